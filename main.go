package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/dt-pm-tools/gitlab-jira-cli/cmd"
)

func main() {
	cmd.Execute()
}
