// Package cmd provides the command-line interface for mmaictl.
//
// The command tree is generated from the resource kind table in
// internal/resource: every kind listed per cluster gets list and get, every
// kind with a top-level endpoint gets add, show, update and delete.
//
// Command Structure:
//
//	mmaictl cluster    add | list | get <name|uid> | update <name|uid> | delete <name|uid>
//	mmaictl department add | list | get | show <name> | update <name> | delete <name>
//	mmaictl nodegroup  add | list | get [--name N]... | show | update | delete
//	mmaictl node       list | get
//	mmaictl project    add | list | get | show | update | delete
//	mmaictl workload   list [--project P] | get [--project P] | resume | suspend
//	mmaictl billing    list
//	mmaictl topology
//	mmaictl version
//	mmaictl self-update
//
// Global flags select the API (--api-url, --token, --config) and the log
// level (--verbose, --quiet). Rendering commands accept --output/-o with
// text, dot, json, yaml or table, and --jq.
//
// Any error is printed as "Error: <message>" on stderr and the process
// exits with status 1.
package cmd
