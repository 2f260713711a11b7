package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/bodgit/saturnid/disc"
	"github.com/bodgit/saturnid/saturn"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

var errNothingToPatch = errors.New("nothing to patch, use --area or --peripherals")

type tool struct {
	fs afero.Fs
}

func setupLogging(w io.Writer, debug bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
}

func (t tool) inspect(path string, extended bool) result {
	r := result{path: path}

	if r.image, r.err = disc.Open(t.fs, path); r.err != nil {
		log.Debug().Str("path", path).Err(r.err).Msg("unable to read system id")
		return r
	}

	log.Debug().Str("path", path).Str("mime", r.image.MIME).Str("entry", r.image.Entry).Stringer("system_id", r.image.SystemID).Msg("read system id")

	if r.report, r.err = saturn.Validate(r.image.SystemID, extended); r.err != nil {
		var fe *saturn.FieldError
		if errors.As(r.err, &fe) {
			log.Debug().Str("path", path).Stringer("field", fe.Field).Err(fe.Err).Msg("validation failed")
		}
	}

	return r
}

func (t tool) inspectAll(paths []string, extended bool) []result {
	results := make([]result, len(paths))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = t.inspect(path, extended)
			return nil
		})
	}

	_ = g.Wait()

	return results
}

func (t tool) info(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	format := c.String("output")
	switch format {
	case formatText, formatYAML, formatJSON:
	default:
		return cli.NewExitError(fmt.Errorf("%w: %s", errUnknownFormat, format), 1)
	}

	results := t.inspectAll(c.Args().Slice(), c.Bool("extended"))

	if err := render(c.App.Writer, c.App.ErrWriter, format, results, c.Bool("verbose")); err != nil {
		return cli.NewExitError(err, 1)
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
		}
	}

	if failed > 0 {
		return cli.NewExitError("", 1)
	}

	return nil
}

func (t tool) patch(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	if !c.IsSet("area") && !c.IsSet("peripherals") {
		return cli.NewExitError(errNothingToPatch, 1)
	}

	path := c.Args().First()

	id, err := disc.ReadSystemID(t.fs, path)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	// Codes are stored exactly as given, spaces included, so positions
	// within the field are kept
	if c.IsSet("area") {
		if _, err := saturn.ParseAreas(c.String("area")); err != nil {
			return cli.NewExitError(err, 1)
		}
		if err := id.SetField(saturn.AreaSymbols, c.String("area")); err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	if c.IsSet("peripherals") {
		if _, err := saturn.ParsePeripherals(c.String("peripherals")); err != nil {
			return cli.NewExitError(err, 1)
		}
		if err := id.SetField(saturn.CompatiblePeripherals, c.String("peripherals")); err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	if _, err := saturn.Validate(id, false); err != nil {
		return cli.NewExitError(fmt.Errorf("%s: refusing to write: %w", path, err), 1)
	}

	if err := disc.WriteSystemID(t.fs, path, id); err != nil {
		return cli.NewExitError(err, 1)
	}

	log.Debug().Str("path", path).Str("area", string(id.AreaSymbols[:])).Str("peripherals", string(id.CompatiblePeripherals[:])).Msg("patched system id")

	return nil
}

func newApp(fs afero.Fs, w, ew io.Writer) *cli.App {
	t := tool{fs}

	app := cli.NewApp()

	app.Name = "saturnid"
	app.Usage = "Sega Saturn System ID inspection utility"
	app.Version = "1.0.0"
	app.Writer = w
	app.ErrWriter = ew

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}

	app.Before = func(c *cli.Context) error {
		setupLogging(c.App.ErrWriter, c.Bool("debug"))
		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:        "info",
			Usage:       "Validate and print the System ID of one or more disc images",
			Description: "",
			ArgsUsage:   "IMAGE...",
			Action:      t.info,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "extended",
					Aliases: []string{"x"},
					Usage:   "include the IP size",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output `FORMAT`, one of text, yaml or json",
					Value:   formatText,
				},
				&cli.BoolFlag{
					Name:    "verbose",
					Aliases: []string{"v"},
					Usage:   "increase verbosity",
				},
			},
		},
		{
			Name:        "patch",
			Usage:       "Rewrite the area symbols or compatible peripherals of a disc image",
			Description: "",
			ArgsUsage:   "IMAGE",
			Action:      t.patch,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "area",
					Usage: "replace area symbols with `CODES`, for example JTUE, spaces keep their position",
				},
				&cli.StringFlag{
					Name:  "peripherals",
					Usage: "replace compatible peripherals with `CODES`, for example JA, spaces keep their position",
				},
			},
		},
	}

	return app
}

func main() {
	if err := newApp(afero.NewOsFs(), os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
