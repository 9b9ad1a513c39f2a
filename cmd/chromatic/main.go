package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/jsvensson/chromatic"
	"github.com/jsvensson/chromatic/internal/palette"
)

var (
	flagT       float32
	flagSpace   string
	flagSteps   int
	flagFormat  string
	flagCheck   bool
	flagVerbose int
	version     = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "chromatic",
	Short:   "Inspect, blend and resolve colors and HCL palette files",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Print a color in every supported notation",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var mixCmd = &cobra.Command{
	Use:   "mix <color> <color>",
	Short: "Blend two colors",
	Args:  cobra.ExactArgs(2),
	RunE:  runMix,
}

var gradientCmd = &cobra.Command{
	Use:   "gradient <color> <color>",
	Short: "Print evenly spaced blend steps between two colors",
	Args:  cobra.ExactArgs(2),
	RunE:  runGradient,
}

var paletteCmd = &cobra.Command{
	Use:   "palette <file>",
	Short: "Resolve a palette file and render it",
	Args:  cobra.ExactArgs(1),
	RunE:  runPalette,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format palette HCL files",
	Long:  "Format one or more palette files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity")
	mixCmd.Flags().Float32VarP(&flagT, "t", "t", 0.5, "blend position from 0 (first color) to 1 (second color)")
	mixCmd.Flags().StringVar(&flagSpace, "space", "oklab", "blend space: "+strings.Join(spaceNames, ", "))
	gradientCmd.Flags().IntVarP(&flagSteps, "steps", "n", 5, "number of gradient steps")
	gradientCmd.Flags().StringVar(&flagSpace, "space", "oklab", "blend space: "+strings.Join(spaceNames, ", "))
	paletteCmd.Flags().StringVar(&flagFormat, "format", "css", "output format: css, json or list")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(mixCmd)
	rootCmd.AddCommand(gradientCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

var spaceNames = []string{"rgb", "linear-rgb", "hsl", "hsv", "hwb", "oklab", "lab", "lch"}

// blendIn dispatches a blend to the interpolator for the named space.
func blendIn(space string, a, b chromatic.Color, t float32) (chromatic.Color, error) {
	switch space {
	case "rgb":
		return a.InterpolateRGB(b, t), nil
	case "linear-rgb":
		return a.InterpolateLinearRGB(b, t), nil
	case "hsl":
		return a.InterpolateHSL(b, t), nil
	case "hsv":
		return a.InterpolateHSV(b, t), nil
	case "hwb":
		return a.InterpolateHWB(b, t), nil
	case "oklab":
		return a.InterpolateOklab(b, t), nil
	case "lab":
		return a.InterpolateLab(b, t), nil
	case "lch":
		return a.InterpolateLCh(b, t), nil
	default:
		return chromatic.Color{}, fmt.Errorf("unknown blend space %q (valid: %s)", space, strings.Join(spaceNames, ", "))
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := chromatic.Parse(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "hex     %s\n", c.HexString())
	fmt.Fprintf(out, "rgb     %s\n", c.RGBString())
	fmt.Fprintf(out, "hsl     %s\n", c.HSLString())

	h, s, v, _ := c.HSVA()
	fmt.Fprintf(out, "hsv     hsv(%.1f, %.1f%%, %.1f%%)\n", h, s*100, v*100)

	h, w, bk, _ := c.HWBA()
	fmt.Fprintf(out, "hwb     hwb(%.1f, %.1f%%, %.1f%%)\n", h, w*100, bk*100)

	l, a, b, _ := c.OklabA()
	fmt.Fprintf(out, "oklab   oklab(%.4f %.4f %.4f)\n", l, a, b)

	l, a, b, _ = c.LabA()
	fmt.Fprintf(out, "lab     lab(%.2f %.2f %.2f)\n", l, a, b)

	l, ch, hr, _ := c.LChA()
	fmt.Fprintf(out, "lch     lch(%.2f %.2f %.4frad)\n", l, ch, hr)

	lr, lg, lb, _ := c.LinearRGBA()
	fmt.Fprintf(out, "linear  %.4f %.4f %.4f\n", lr, lg, lb)

	return nil
}

func parseArgs(args []string) (chromatic.Color, chromatic.Color, error) {
	a, err := chromatic.Parse(args[0])
	if err != nil {
		return chromatic.Color{}, chromatic.Color{}, fmt.Errorf("first color: %w", err)
	}
	b, err := chromatic.Parse(args[1])
	if err != nil {
		return chromatic.Color{}, chromatic.Color{}, fmt.Errorf("second color: %w", err)
	}
	return a, b, nil
}

func runMix(cmd *cobra.Command, args []string) error {
	a, b, err := parseArgs(args)
	if err != nil {
		return err
	}

	mixed, err := blendIn(flagSpace, a, b, flagT)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), mixed.HexString())
	return nil
}

func runGradient(cmd *cobra.Command, args []string) error {
	a, b, err := parseArgs(args)
	if err != nil {
		return err
	}
	if flagSteps < 2 {
		return fmt.Errorf("gradient needs at least 2 steps, got %d", flagSteps)
	}

	for i := 0; i < flagSteps; i++ {
		t := float32(i) / float32(flagSteps-1)
		c, err := blendIn(flagSpace, a, b, t)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.HexString())
	}
	return nil
}

func runPalette(cmd *cobra.Command, args []string) error {
	p, err := palette.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}

	out, err := palette.Render(p, flagFormat)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted := palette.FormatSource(content)
		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
