/*
Copyright © 2019 the pipeflow authors.
This file is part of pipeflow.

pipeflow is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

pipeflow is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with pipeflow.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package pipeflow computes friction head losses in pipes and pipe
// networks in series.
//
// The catalog package holds nominal pipe size and material roughness
// tables, the friction package the Colebrook and Hazen-Williams
// correlations, the pipe package the pipe property model, and the solver
// package the batch case solver. Command pipeflow provides a command-line
// interface.
package pipeflow

// Version gives the version number.
const Version = "1.0.0"
