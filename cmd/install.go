package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/skillhub-cli/skillhub/internal/config"
	"github.com/skillhub-cli/skillhub/internal/skill"
)

var flagInstallForce bool

var installCmd = &cobra.Command{
	Use:   "install <name>",
	Short: "Install a skill by cloning its source repository",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&flagInstallForce, "force", false, "Reinstall over an existing copy")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	if err := checkGitAvailable(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w\nRun 'skillhub init' first.", err)
	}
	name := args[0]

	rec, err := findRecord(cmd, cfg, name)
	if err != nil {
		return err
	}
	cloneURL, err := skill.CloneURL(rec.Source)
	if err != nil {
		return fmt.Errorf("cannot install %s: %w", name, err)
	}

	dest := filepath.Join(cfg.InstallDir, name)
	if _, err := os.Stat(dest); err == nil {
		if !flagInstallForce {
			printSkip(name, fmt.Sprintf("already installed at %s (use --force to reinstall)", dest))
			return nil
		}
		if err := os.RemoveAll(dest); err != nil {
			return fmt.Errorf("cannot remove existing install: %w", err)
		}
	}

	unlock, err := acquireInstallLock(cfg, 30*time.Second)
	if err != nil {
		return err
	}
	defer unlock()

	printSection("Install")
	printInfo(name, fmt.Sprintf("cloning %s", cloneURL))
	if err := os.MkdirAll(cfg.InstallDir, 0o755); err != nil {
		return fmt.Errorf("cannot create install dir: %w", err)
	}
	if err := gitRun("clone", "--depth", "1", cloneURL, dest); err != nil {
		return fmt.Errorf("git clone failed: %w", err)
	}
	if !rec.Verified {
		printWarn(name, "skill is not marked verified by its registry; review before use")
	}
	printOK(name, fmt.Sprintf("installed to %s", dest))
	return nil
}

// acquireInstallLock serializes installs across processes so two
// invocations don't clone into the same directory.
func acquireInstallLock(cfg *config.Config, timeout time.Duration) (func(), error) {
	dir, err := config.SkillhubDir()
	if err != nil {
		return func() {}, err
	}
	l := flock.New(filepath.Join(dir, "install.lock"))
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire install lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("another install is in progress")
		}
		time.Sleep(200 * time.Millisecond)
	}
}
