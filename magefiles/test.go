//go:build mage

package main

// Runs the unit tests of every package. The race detector needs cgo.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withEnv("CGO_ENABLED=1"), withStream())
	return err
}
