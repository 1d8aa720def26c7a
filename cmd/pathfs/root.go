package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rwx-research/pathfs/internal/cli"
	"github.com/rwx-research/pathfs/internal/errors"
	"github.com/rwx-research/pathfs/internal/fs"
	"github.com/rwx-research/pathfs/internal/memoryfs"
	"github.com/rwx-research/pathfs/internal/path"
)

const (
	backendOS     = "os"
	backendMemory = "memory"
)

var (
	Debug bool

	service cli.Service

	rootCmd = &cobra.Command{
		Use:               "pathfs",
		Short:             "Inspect paths and manage folders and files through a pluggable file system",
		SilenceErrors:     true,
		SilenceUsage:      true,
		Version:           version,
		PersistentPreRunE: setup,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().String("backend", backendOS, "the file system to operate on: os or memory")
	rootCmd.PersistentFlags().String("fixture", "", "a YAML file describing the initial contents of the memory backend")

	viper.SetEnvPrefix("pathfs")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("backend", rootCmd.PersistentFlags().Lookup("backend"))
	_ = viper.BindPFlag("fixture", rootCmd.PersistentFlags().Lookup("fixture"))

	rootCmd.AddCommand(inspectCmd, existsCmd, mkdirCmd, touchCmd, catCmd, writeCmd, rmCmd, treeCmd, homeCmd)
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func setup(cmd *cobra.Command, args []string) error {
	Debug = viper.GetBool("debug")
	logger := newLogger()

	var (
		fileSystem fs.FileSystem
		treeWriter cli.TreeWriter
	)

	switch backend := viper.GetString("backend"); backend {
	case backendOS:
		if viper.GetString("fixture") != "" {
			return errors.New("--fixture can only be used with the memory backend")
		}
		fileSystem = newLocal(logger)
	case backendMemory:
		mfs, err := newMemoryFS(logger)
		if err != nil {
			return err
		}
		fileSystem = mfs
		treeWriter = mfs
	default:
		return errors.Errorf("unknown backend %q", backend)
	}

	var err error
	service, err = cli.NewService(cli.Config{
		FileSystem: fs.WithLogging(fileSystem, logger),
		Stdout:     os.Stdout,
		TreeWriter: treeWriter,
	})
	return err
}

func newLocal(logger logrus.FieldLogger) fs.Local {
	local := fs.NewLocal()
	local.Log = logger
	return local
}

func newMemoryFS(logger logrus.FieldLogger) (*memoryfs.MemoryFS, error) {
	mfs := memoryfs.NewFS()

	fixture := viper.GetString("fixture")
	if fixture == "" {
		return mfs, nil
	}

	contents, ok := newLocal(logger).ReadFileContentsAsString(path.New(fixture))
	if !ok {
		return nil, errors.Wrapf(errors.ErrFileNotExists, "unable to read fixture %q", fixture)
	}

	if err := mfs.LoadFixture([]byte(contents)); err != nil {
		return nil, errors.Wrapf(err, "unable to load fixture %q", fixture)
	}

	return mfs, nil
}
