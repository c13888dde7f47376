/*
Copyright 2026 StarTrack contributors
*/

package main

import "github.com/startrack/startrack-sim-go/cmd"

func main() {
	cmd.Execute()
}
