package main

import secretsweep "github.com/secretsweep/secretsweep/cmd/secretsweep"

func main() {
	secretsweep.Execute()
}
