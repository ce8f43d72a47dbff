// ABOUTME: Install Claude Code skill for workouts
// ABOUTME: Embeds and installs the skill definition to ~/.claude/skills/

package main

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var skillSkipConfirm bool

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install Claude Code skill",
	Long: `Install the workouts skill for Claude Code.

This copies the skill definition to ~/.claude/skills/workouts/
so Claude Code can use workouts commands contextually.`,
	Annotations: map[string]string{standalone: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		return installSkill(home, cmd.InOrStdin(), cmd.OutOrStdout(), skillSkipConfirm)
	},
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installSkillCmd)
}

func skillPathIn(home string) string {
	return filepath.Join(home, ".claude", "skills", "workouts", "SKILL.md")
}

func installSkill(home string, in io.Reader, out io.Writer, skipConfirm bool) error {
	skillPath := skillPathIn(home)

	fmt.Fprintln(out, "┌─────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(out, "│            Workouts Skill for Claude Code                   │")
	fmt.Fprintln(out, "└─────────────────────────────────────────────────────────────┘")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "This will install the workouts skill, enabling Claude Code to:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  • Log runs and rides with their location")
	fmt.Fprintln(out, "  • List, edit, and delete workouts")
	fmt.Fprintln(out, "  • Export the workout map as GeoJSON")
	fmt.Fprintln(out, "  • Use the /workouts slash command")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Destination:")
	fmt.Fprintf(out, "  %s\n", skillPath)
	fmt.Fprintln(out)

	if _, err := os.Stat(skillPath); err == nil {
		fmt.Fprintln(out, "Note: A skill file already exists and will be overwritten.")
		fmt.Fprintln(out)
	}

	if !skipConfirm {
		fmt.Fprint(out, "Install the workouts skill? [y/N] ")
		response, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read response: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Installation canceled.")
			return nil
		}
		fmt.Fprintln(out)
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return fmt.Errorf("failed to read embedded skill: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(skillPath), 0750); err != nil { // #nosec G301 - skill dir needs to be readable
		return fmt.Errorf("failed to create skill directory: %w", err)
	}

	if err := os.WriteFile(skillPath, content, 0600); err != nil { // #nosec G306 - skill file needs to be readable
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	fmt.Fprintln(out, "✓ Installed workouts skill successfully!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Claude Code will now recognize /workouts commands.")
	fmt.Fprintln(out, "Try asking Claude: \"Log a 5k run here\" or \"What was my longest ride?\"")
	return nil
}
