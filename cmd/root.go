// Package cmd implements the remuco command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/remuco-cli/remuco/bridge"
	"github.com/remuco-cli/remuco/color"
	"github.com/remuco-cli/remuco/config"
	"github.com/remuco-cli/remuco/constant"
	"github.com/remuco-cli/remuco/icon"
	"github.com/remuco-cli/remuco/ipc"
	"github.com/remuco-cli/remuco/key"
	"github.com/remuco-cli/remuco/log"
	"github.com/remuco-cli/remuco/plobcache"
	"github.com/remuco-cli/remuco/remote"
	"github.com/remuco-cli/remuco/style"
	"github.com/remuco-cli/remuco/util"
	"github.com/remuco-cli/remuco/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("player", "p", "", "Player IPC address, unix:///path or tcp://host:port")
	lo.Must0(viper.BindPFlag(key.PlayerAddress, rootCmd.Flags().Lookup("player")))

	rootCmd.Flags().StringP("listen", "l", "", "Listen address of the remote-control server")
	lo.Must0(viper.BindPFlag(key.ServerAddress, rootCmd.Flags().Lookup("listen")))
}

var rootCmd = &cobra.Command{
	Use:   constant.Remuco,
	Short: "Remote control for the XMMS2 music player",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Remote control for the XMMS2 music player"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(runBridge(cmd.Context()))
	},
}

// runBridge connects to the player and serves remote clients until
// interrupted or until the player goes away.
func runBridge(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	address := viper.GetString(key.PlayerAddress)
	if address == "" {
		address = where.PlayerSocket()
	}

	player, err := ipc.Connect(ctx, address)
	if err != nil {
		return fmt.Errorf("player at %s: %w", address, err)
	}
	defer util.Ignore(player.Close)

	server := remote.NewHTTPServer(remote.Options{
		Address:        viper.GetString(key.ServerAddress),
		Descriptor:     bridge.Descriptor(viper.GetString(key.PlayerName), viper.GetInt(key.PlayerMaxRating)),
		AllowedOrigins: viper.GetStringSlice(key.ServerCORSOrigins),
	})
	if err := server.Start(); err != nil {
		return err
	}

	opts := bridge.Options{
		WaitTimeout:  config.Seconds(key.BridgeWaitTimeout),
		StartupDelay: config.Milliseconds(key.BridgeStartupDelay),
	}
	if viper.GetBool(key.CachePlobEnable) {
		opts.Plobs = plobcache.New(where.Plobs(), config.Seconds(key.CachePlobLifetime))
	}

	fmt.Printf(
		"%s bridging %s to %s\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		style.Fg(color.Purple)(address),
		style.Fg(color.Yellow)("http://"+server.Addr()),
	)

	log.Infof("bridging %s to %s", address, server.Addr())
	return bridge.New(player, server, opts).Run(ctx)
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
