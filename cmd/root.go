/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "heritagehub",
	Short: "HeritageHub backend API server",
	Long: `HeritageHub is a content-and-booking platform for heritage-site tourism.

The backend serves monuments, reviews, articles, timelines, guided tours,
bookings and favorites over a JSON REST API backed by PostgreSQL.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
