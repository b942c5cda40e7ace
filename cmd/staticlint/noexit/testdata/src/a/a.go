package main

import (
	"os"
	myos "os"
)

func helper() {
	os.Exit(2)
}

func main() {
	defer helper()
	os.Exit(1) // want "вызов os.Exit в функции main запрещён"
	func() {
		myos.Exit(3) // want "вызов os.Exit в функции main запрещён"
	}()
}
