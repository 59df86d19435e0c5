package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/remuco-cli/remuco/color"
	"github.com/remuco-cli/remuco/icon"
	"github.com/remuco-cli/remuco/key"
	"github.com/remuco-cli/remuco/remote"
	"github.com/remuco-cli/remuco/status"
	"github.com/remuco-cli/remuco/style"
	"github.com/remuco-cli/remuco/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const metaWidth = 72

func ctlClient() *remote.Client {
	return remote.NewClient(viper.GetString(key.CtlServer))
}

func init() {
	rootCmd.AddCommand(ctlCmd)

	ctlCmd.PersistentFlags().StringP("server", "s", "", "Base URL of the running bridge")
	lo.Must0(viper.BindPFlag(key.CtlServer, ctlCmd.PersistentFlags().Lookup("server")))
	ctlCmd.SetOut(os.Stdout)
}

// ctlCmd talks to a running bridge like a remote client would.
var ctlCmd = &cobra.Command{
	Use:   "ctl",
	Short: "Control a running bridge",
}

func renderState(s status.PlaybackState) string {
	var (
		i = icon.Stopped
		c = style.StoppedColor
	)
	switch s {
	case status.Playing:
		i, c = icon.Playing, style.PlayingColor
	case status.Paused:
		i, c = icon.Paused, style.PausedColor
	}
	return style.Fg(c)(icon.Get(i)) + " " + style.Tag(style.Base, c)(util.Capitalize(s.String()))
}

func init() {
	ctlCmd.AddCommand(ctlStatusCmd)
}

var ctlStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the player status",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		client := ctlClient()

		d, err := client.Descriptor(ctx)
		handleErr(err)

		snap, err := client.Status(ctx)
		handleErr(err)

		cmd.Println(style.Title(d.PlayerName))
		cmd.Println(renderState(snap.State))
		cmd.Printf("%s %d%%\n", icon.Get(icon.Volume), snap.Volume)

		if pos, ok := snap.Position.Get(); ok {
			cmd.Printf("%s %s\n", icon.Get(icon.Playlist), style.Faint(fmt.Sprintf("position %d of %d", pos, len(snap.Playlist))))
		}

		if snap.TrackID == "" {
			cmd.Println(style.Faint("no active track"))
			return
		}

		plob, err := client.Plob(ctx, snap.TrackID)
		handleErr(err)
		printPlob(cmd, plob)
	},
}

func printPlob(cmd *cobra.Command, plob *remote.Plob) {
	header := style.New().Bold(true).Foreground(style.AccentColor).Render

	title := lo.CoalesceOrEmpty(plob.Meta[remote.MetaTitle], "#"+plob.ID)
	cmd.Printf("%s %s\n", icon.Get(icon.Track), header(title))

	names := lo.Without(lo.Keys(plob.Meta), remote.MetaTitle)
	sort.Strings(names)

	for _, name := range names {
		cmd.Printf("  %s %s\n", style.Fg(style.FaintColor)(name+":"), style.Truncate(metaWidth)(plob.Meta[name]))
	}
}

func init() {
	ctlCmd.AddCommand(ctlLibraryCmd)
}

var ctlLibraryCmd = &cobra.Command{
	Use:   "library",
	Short: "List the stored playlists",
	Run: func(cmd *cobra.Command, args []string) {
		lib, err := ctlClient().Library(cmd.Context())
		handleErr(err)

		cmd.Println(style.Faint(util.Quantify(lib.Len(), "ploblist", "ploblists")))
		for _, pl := range lib.Ploblists {
			cmd.Printf("%s %s\n", icon.Get(icon.Playlist), style.Fg(color.Yellow)(pl.Name))
		}
	},
}

func init() {
	ctlCmd.AddCommand(ctlPlobCmd)
}

var ctlPlobCmd = &cobra.Command{
	Use:   "plob <id>",
	Short: "Show the metadata of a track",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plob, err := ctlClient().Plob(cmd.Context(), args[0])
		handleErr(err)
		printPlob(cmd, plob)
	},
}

func init() {
	ctlCmd.AddCommand(ctlPloblistCmd)
}

var ctlPloblistCmd = &cobra.Command{
	Use:   "ploblist <id>",
	Short: "List the tracks of a playlist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ids, err := ctlClient().Ploblist(cmd.Context(), args[0])
		handleErr(err)

		cmd.Println(style.Faint(util.Quantify(len(ids), "track", "tracks")))
		for i, id := range ids {
			cmd.Printf("%s %s\n", style.Fg(style.FaintColor)(strconv.Itoa(i+1)+"."), id)
		}
	},
}

func init() {
	ctlCmd.AddCommand(ctlPlayCmd)
}

var ctlPlayCmd = &cobra.Command{
	Use:   "play <ploblist>",
	Short: "Load a playlist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(ctlClient().PlayPloblist(cmd.Context(), args[0]))
		cmd.Printf("%s loaded %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Yellow)(args[0]))
	},
}

func init() {
	ctlCmd.AddCommand(ctlControlCmd)
}

var ctlControlCmd = &cobra.Command{
	Use:   "control <command> [param]",
	Short: "Send a simple control command",
	Long:  "Send a simple control command.\nAvailable commands are: " + strings.Join(remote.CommandNames(), ", "),
	Args:  cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return remote.CommandNames(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		command, err := remote.ParseCommand(args[0])
		handleErr(err)

		param := 0
		if len(args) == 2 {
			param, err = strconv.Atoi(args[1])
			if err != nil {
				handleErr(fmt.Errorf("invalid parameter %q: %w", args[1], err))
			}
		}

		handleErr(ctlClient().Control(cmd.Context(), command, param))
		cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(command.String()))
	},
}

