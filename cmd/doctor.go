package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openlab-tools/labsync/internal/config"
	"github.com/openlab-tools/labsync/internal/git"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that labsync can run on this machine",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ok := true

	svc := git.NewService()
	if svc.IsInstalled() {
		fmt.Println("ok   git is installed")
	} else {
		ok = false
		fmt.Println("FAIL git not found on PATH")
		fmt.Printf("     download it from %s\n", git.DownloadURL)
	}

	cfg, err := config.Load()
	if err != nil {
		ok = false
		fmt.Printf("FAIL config: %v\n", err)
	} else {
		fmt.Printf("ok   config loaded (%d projects)\n", len(cfg.GetProjects()))
		if cfg.GetToken() != "" {
			fmt.Println("ok   hub token stored")
		} else {
			fmt.Println("     no hub token stored (press 'l' in the app to log in)")
		}
		if cfg.GetNotificationsEnabled() {
			fmt.Println("ok   desktop notifications enabled")
		} else {
			fmt.Println("     desktop notifications disabled (press 'n' in the app to enable)")
		}
	}

	if !ok {
		return fmt.Errorf("some checks failed")
	}
	return nil
}
