/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/heritagehub/apiserver/cmd"

func main() {
	cmd.Execute()
}
