package main

import "github.com/frahmantamala/timesheet-management/cmd"

func main() {
	cmd.Execute()
}
