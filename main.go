package main

import (
	"github.com/Electron-Labs/dory-pcs/cmd"
	_ "github.com/Electron-Labs/dory-pcs/cmd/build"
	_ "github.com/Electron-Labs/dory-pcs/cmd/pcs"
	_ "github.com/Electron-Labs/dory-pcs/cmd/prove"
)

func main() {
	cmd.Execute()
}
