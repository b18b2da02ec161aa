// file: radixmap/main.go
package main

import "github.com/maatini/radixmap/cmd"

func main() {
	cmd.Execute()
}
