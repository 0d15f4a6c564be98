package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonwhittlestone/tools-streamstofiles/internal/concat"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/config"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/download"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/listing"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/logger"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/model"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/playlist"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/tag"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/timeline"
)

// DefaultPlaylistURL is used when no playlist argument is given.
const DefaultPlaylistURL = "https://www.youtube.com/watch?v=LZmtl3l1R9A&list=PLW7vZQVayoR0wLs2ahN7h774_XsD-dp-2"

// Output file names
const (
	PlaylistFileName = "playlist.m3u"
	InfoFileName     = "playlist_info.txt"
	ListingFileName  = "tracklist.txt"
	MergedSuffix     = "_complete.mp3"
)

// Version is set during build via -ldflags "-X .../cmd.Version=X.Y.Z"
var Version = "dev"

var (
	flagOutputDir   string
	flagQuality     string
	flagUpdateTags  bool
	flagConcatenate bool
	flagShuffle     bool
)

var rootCmd = &cobra.Command{
	Use:   "streamstofiles [playlist-url]",
	Short: "Download a playlist and convert it to tagged MP3 files",
	Long: `streamstofiles downloads a remote playlist, converts each item to a
tagged MP3, writes an m3u playlist plus an info report, and can merge
everything into a single long-form file (in order or shuffled) with a
track listing of where each track starts and ends.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "output directory for downloaded files")
	rootCmd.Flags().StringVarP(&flagQuality, "quality", "q", "", "MP3 quality in kbps (128, 192, 320)")
	rootCmd.Flags().BoolVar(&flagUpdateTags, "update-tags", true, "update ID3 tags after download")
	rootCmd.Flags().BoolVar(&flagConcatenate, "concatenate", true, "create a single concatenated file from all tracks")
	rootCmd.Flags().BoolVar(&flagShuffle, "shuffle", false, "concatenate tracks in randomized order")
	rootCmd.Version = Version
	rootCmd.SilenceUsage = true
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	settings := config.Load()
	if flagOutputDir != "" {
		settings.OutputDir = flagOutputDir
	}
	if flagQuality != "" {
		settings.Quality = flagQuality
	}
	if !config.ValidQuality(settings.Quality) {
		return fmt.Errorf("invalid quality %q (choose one of 128, 192, 320)", settings.Quality)
	}

	logger.Init(logger.Config{
		Level:      settings.LogLevel,
		OutputPath: settings.LogFile,
		MaxSizeMB:  settings.LogMaxSize,
		MaxBackups: 3,
		MaxAgeDays: 28,
	})
	defer logger.Sync()

	playlistURL := DefaultPlaylistURL
	if len(args) > 0 {
		playlistURL = args[0]
	}

	// An interrupt must stop remaining work gracefully, keeping completed
	// tracks, rather than surfacing as a failure.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("streamstofiles v%s\n", Version)
	fmt.Printf("Playlist URL: %s\n", playlistURL)
	fmt.Printf("Output directory: %s\n", settings.OutputDir)
	fmt.Printf("Quality: %s kbps\n\n", settings.Quality)

	fetcher := download.NewYTDLPFetcher(download.FetcherOptions{
		Quality:    settings.Quality,
		CookieFile: settings.CookieFile,
		JSRuntime:  settings.JSRuntime,
	})
	service := download.NewService(fetcher, download.Options{
		OutputDir:   settings.OutputDir,
		PaceDelay:   settings.PaceDelay,
		MaxAttempts: settings.MaxAttempts,
	})
	service.SetItemCallback(printItemResult)

	run, err := service.DownloadPlaylist(ctx, playlistURL)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Println("\nDownload interrupted. Completed tracks have been kept.")
		return nil
	case err != nil:
		return err
	}

	tracks := run.Tracks()
	fmt.Printf("\nDownloaded %d/%d tracks to %s\n\n", run.Downloaded(), run.TotalTracks, run.Dir)
	if len(tracks) == 0 {
		color.Yellow("Nothing was downloaded; skipping playlist, tags and concatenation.")
		return nil
	}

	if flagUpdateTags {
		updateTags(tracks)
	}

	m3uPath := filepath.Join(run.Dir, PlaylistFileName)
	if err := playlist.WriteM3U(m3uPath, tracks); err != nil {
		return fmt.Errorf("failed to write playlist: %w", err)
	}
	color.Green("✓ Created playlist: %s", m3uPath)

	var result *concat.Result
	if flagConcatenate {
		result, err = concatenate(ctx, run, tracks, settings)
		if err != nil {
			return err
		}
	}

	infoPath := filepath.Join(run.Dir, InfoFileName)
	if err := playlist.WriteInfo(infoPath, run, result); err != nil {
		return fmt.Errorf("failed to write info file: %w", err)
	}
	color.Green("✓ Created info file: %s", infoPath)

	printSummary(run, result)
	return nil
}

// concatenate merges the downloaded tracks and writes the track listing.
func concatenate(ctx context.Context, run *model.DownloadRun, tracks []*model.Track, settings *config.Settings) (*concat.Result, error) {
	mode := concat.OrderSequential
	if flagShuffle {
		mode = concat.OrderShuffled
	}

	outputPath := filepath.Join(run.Dir, filepath.Base(run.Dir)+MergedSuffix)
	planner := concat.NewPlanner(concat.NewFFmpegMuxer(settings.FFmpegPath))

	result, err := planner.Plan(ctx, tracks, mode, outputPath, settings.Quality)
	if err != nil {
		var muxErr *concat.MuxerError
		if errors.As(err, &muxErr) {
			logger.Error("merge failed", zap.String("output", outputPath), zap.Error(muxErr))
		}
		return nil, fmt.Errorf("concatenation failed: %w", err)
	}

	color.Green("✓ Created concatenated file: %s", filepath.Base(result.OutputPath))
	color.Green("✓ Total duration: %s", timeline.FormatDuration(result.TotalDuration))

	listingPath := filepath.Join(run.Dir, ListingFileName)
	if err := listing.Write(listingPath, result, run.PlaylistTitle); err != nil {
		return nil, fmt.Errorf("failed to write track listing: %w", err)
	}
	color.Green("✓ Created track listing: %s", listingPath)

	return result, nil
}

func updateTags(tracks []*model.Track) {
	tagger := tag.NewTagger()
	for _, track := range tracks {
		result := tagger.Apply(track)
		if result.Skipped {
			color.Yellow("  ✗ Tags skipped for %s: %s", track.FileName(), result.Reason)
			continue
		}
		fmt.Printf("  ✓ Updated tags for: %s\n", track.FileName())
	}
	fmt.Println()
}

func printItemResult(result model.FetchResult, index, total int) {
	if result.Status.OK() {
		color.Green("  ✓ [%d/%d] %s", index, total, result.Track.Title)
		return
	}
	color.Yellow("  ✗ [%d/%d] %s (%s)", index, total, result.Item.Title, result.Reason)
}

// printSummary renders the per-track closing table.
func printSummary(run *model.DownloadRun, result *concat.Result) {
	fmt.Println()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Title", "Duration", "Status"})

	for _, res := range run.Results {
		switch {
		case res.Status.OK():
			table.Append([]string{
				fmt.Sprintf("%d", res.Track.TrackNumber),
				res.Track.Title,
				timeline.FormatDuration(res.Track.Duration),
				res.Status.String(),
			})
		default:
			table.Append([]string{"-", res.Item.Title, "-", res.Status.String()})
		}
	}
	table.Render()

	fmt.Printf("\nProcessed %d/%d tracks into %s\n", run.Downloaded(), run.TotalTracks, run.Dir)
	if result != nil {
		fmt.Printf("Merged file: %s (%s)\n", filepath.Base(result.OutputPath), timeline.FormatDuration(result.TotalDuration))
	}
}
