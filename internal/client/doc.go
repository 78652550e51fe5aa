// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line demo client of the notes API.
//
// Commands are dispatched on the first positional argument:
//
//	version                      print the server build info
//	list [tag]                   list the caller's notes
//	create <title> [body] [tag]  create a note
//	get <id>                     print one note
//	delete <id>                  delete a note
//	watch                        stream live note events until interrupted
//	demo                         version, login, create and list (default)
package client
