// Command waypoint replays scripted navigation against a router tree and
// prints the tree after every step.
package main

func main() {
	Execute()
}
