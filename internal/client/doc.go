// Package client implements the todo command-line client on top of
// [adapter.TodoAPI]. Each invocation runs one command and prints the server's
// answer as indented JSON on stdout.
//
// Commands:
//
//	register <email> <password>
//	login <email> <password>
//	logout
//	list
//	add <title> [description]
//	get <id>
//	update <id> <title> [description]
//	done <id>
//	delete <id>
//	health
package client
