package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tessella/pkg/layout"
	"tessella/pkg/render"
)

// Execute runs the tessella CLI.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	c := New(os.Stderr, charmlog.InfoLevel)

	root := &cobra.Command{
		Use:          "tessella",
		Short:        "Tessella renders HTML with a CSS2 box-model layout engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.Logger.SetLevel(charmlog.DebugLevel)
			}
			if configPath != "" {
				cfg, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				c.Config = cfg
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")

	root.AddCommand(newRenderCmd(c))
	root.AddCommand(newDumpCmd(c))

	return root.ExecuteContext(context.Background())
}

func newRenderCmd(c *CLI) *cobra.Command {
	var (
		width  float64
		height float64
		font   string
	)

	cmd := &cobra.Command{
		Use:   "render <input.html> <output.png>",
		Short: "Lay out an HTML file and rasterize it to PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags override the config file.
			if cmd.Flags().Changed("width") {
				c.Config.Viewport.Width = width
			}
			if cmd.Flags().Changed("height") {
				c.Config.Viewport.Height = height
			}
			if cmd.Flags().Changed("font") {
				c.Config.Font.Path = font
			}

			box, _, err := c.layoutFile(args[0])
			if err != nil {
				return err
			}

			r := render.NewRenderer(int(c.Config.Viewport.Width), int(c.Config.Viewport.Height), c.Config.Font.Path)
			r.Render(box)
			if err := r.SavePNG(args[1]); err != nil {
				return err
			}
			c.Logger.Info("rendered", "input", args[0], "output", args[1])
			return nil
		},
	}
	cmd.Flags().Float64VarP(&width, "width", "w", 800, "viewport width in pixels")
	cmd.Flags().Float64VarP(&height, "height", "H", 600, "viewport height in pixels")
	cmd.Flags().StringVar(&font, "font", "", "path to a TTF font for measurement and text")
	return cmd
}

func newDumpCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <input.html>",
		Short: "Lay out an HTML file and print the layout tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, _, err := c.layoutFile(args[0])
			if err != nil {
				return err
			}
			layout.Dump(cmd.OutOrStdout(), box)
			return nil
		},
	}
}
