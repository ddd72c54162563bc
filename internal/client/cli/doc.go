// Package cli is the interactive admin console for the FundUnity content.
//
// It wires configuration, local storage, the session and one list-edit
// screen per content type behind a small REPL:
//
//	login / logout / whoami
//	use <aboutus|slider|programs|partners|transactions>
//	list, search <text>
//	add, edit <id>, save, cancel, delete <id>
//	email, password
//
// App.Run blocks until the user exits.
package cli
