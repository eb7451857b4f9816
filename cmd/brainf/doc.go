// This file is part of brainf - https://github.com/prog-lang/brainf
//
// Copyright 2026 The brainf Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// The brainf command line tool runs Brainf programs with the packages
// github.com/prog-lang/brainf/asm and github.com/prog-lang/brainf/vm.
//
// Usage:
//
//	brainf [flags] source.bf
//	brainf -i [flags]
//
//	-config filename
//		  configuration filename (default: search for brainf.toml)
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump the tape upon exit
//	-i
//		  start an interactive session
//	-list
//		  print the disassembled program instead of running it
//	-log filename
//		  also write JSON logs to filename
//	-raw
//		  enable raw terminal IO
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//
// -debug: sets the log level to debug and prints a full stacktrace of errors.
//
// -raw: switches the terminal to raw mode so that the program gets every key
// press as soon as it is typed. CTRL-D ends the input. This is ignored if
// stdin is not a terminal.
//
// -with: the specified file is fed to the program as input before stdin. If
// specified multiple times, files are read in order of appearance on the
// command line.
//
// -i: runs each entry on a tape kept for the whole session. An entry with
// unbalanced '[' continues on the next line. Type :help for a list of
// commands.
//
// Configuration: unless -config is given, brainf looks for a brainf.toml file
// in the current directory and its parents, then in the user configuration
// directory (brainf/brainf.toml). Flags override the configuration values:
//
//	[run]
//	raw = false
//	dump = false
//	with = ["input.txt"]  # relative to the configuration file
//
//	[log]
//	level = "info"        # debug, info, warn or error
//	file = ""
//
//	[repl]
//	history = "~/.brainf_history"
//
// The exit status is 0 on success, 1 if the source cannot be read, has
// unbalanced brackets or fails at run time, and 2 on usage errors.
package main
