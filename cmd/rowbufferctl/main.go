// Command rowbufferctl drives a standalone row buffer from the command
// line: it loads a column schema, reads newline-delimited JSON rows from
// stdin, inserts them, flushes, and prints the resulting stats payload.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/flowlane/rowbuffer/pkg/logger"
	"github.com/flowlane/rowbuffer/pkg/rowbuffer"
	"github.com/flowlane/rowbuffer/pkg/rowschema"
)

var version = "0.1.0"

// cliConfig mirrors rowbuffer.Config plus the channel identity, loaded
// through viper so it can come from a YAML file or ROWBUFFERCTL_-prefixed
// environment variables, over built-in defaults. No command-line flag feeds
// into it.
type cliConfig struct {
	Channel       string `mapstructure:"channel"`
	rowbuffer.Config `mapstructure:",squash"`
}

func main() {
	_ = godotenv.Load()

	var schemaPath, configPath string

	root := &cobra.Command{
		Use:   "rowbufferctl",
		Short: "Drive a standalone ingestion row buffer from the command line",
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rowbufferctl v%s\n", version)
		},
	})

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Load a schema, insert rows read from stdin as newline-delimited JSON, then flush",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(schemaPath, configPath)
		},
	}
	runCmd.Flags().StringVar(&schemaPath, "schema", "", "path to a JSON column schema file (required)")
	runCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML row buffer config file (optional)")
	_ = runCmd.MarkFlagRequired("schema")
	root.AddCommand(runCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(configPath string) (cliConfig, error) {
	cfg := cliConfig{Channel: "stdin.rowbuffer.channel", Config: rowbuffer.DefaultConfig()}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ROWBUFFERCTL")
	v.AutomaticEnv()
	v.SetDefault("channel", cfg.Channel)
	v.SetDefault("arena_chunk_bytes", cfg.ArenaChunkBytes)
	v.SetDefault("max_arenas", cfg.MaxArenas)
	v.SetDefault("checked_allocator", cfg.CheckedAllocator)
	v.SetDefault("fix_sb16_null_count_bug", cfg.FixSB16NullCountBug)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func run(schemaPath, configPath string) error {
	if err := logger.Init(logger.Config{Level: "info", Encoding: "console", OutputPaths: []string{"stderr"}}); err != nil {
		return err
	}
	log := logger.Get()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Config.Validate(); err != nil {
		return err
	}

	columns, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}

	alloc := rowbuffer.NewArenaAllocator(cfg.ArenaChunkBytes, cfg.MaxArenas, cfg.CheckedAllocator)
	channel := rowbuffer.NewSimpleChannel(cfg.Channel, alloc)

	buf, err := rowbuffer.New(channel, cfg.Config)
	if err != nil {
		return err
	}
	if err := buf.SetupSchema(columns); err != nil {
		return err
	}
	defer buf.Close()

	rows, err := readRows(os.Stdin)
	if err != nil {
		return err
	}

	if err := buf.InsertRows(rows, ""); err != nil {
		log.Error("insert_rows failed", zap.Error(err))
		return err
	}
	log.Info("rows inserted", zap.Int("count", len(rows)), zap.Float64("buffer_size", buf.Size()))

	data, err := buf.Flush()
	if err != nil {
		return err
	}
	if data == nil {
		fmt.Println("{}")
		return nil
	}
	defer data.Release()

	return printSummary(data)
}

func loadSchema(path string) ([]rowschema.ColumnDescriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening schema file: %w", err)
	}
	defer f.Close()

	var columns []rowschema.ColumnDescriptor
	if err := json.NewDecoder(f).Decode(&columns); err != nil {
		return nil, fmt.Errorf("decoding schema file: %w", err)
	}
	return columns, nil
}

func readRows(in *os.File) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		row := make(map[string]interface{})
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("decoding row: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, scanner.Err()
}

func printSummary(data *rowbuffer.ChannelData) error {
	summary := struct {
		RowCount     int64                             `json:"row_count"`
		BufferSize   float64                            `json:"buffer_size"`
		RowSequencer int64                             `json:"row_sequencer"`
		OffsetToken  string                            `json:"offset_token"`
		Columns      map[string]rowbufferColumnSummary `json:"columns"`
	}{
		RowCount:     data.RowCount,
		BufferSize:   data.BufferSize,
		RowSequencer: data.RowSequencer,
		OffsetToken:  data.OffsetToken,
		Columns:      make(map[string]rowbufferColumnSummary, len(data.EpInfo.ColumnEps)),
	}
	for name, props := range data.EpInfo.ColumnEps {
		summary.Columns[name] = rowbufferColumnSummary{
			NullCount: props.NullCount,
			MaxLength: props.MaxLength,
			MinInt:    bigIntString(props.MinIntValue),
			MaxInt:    bigIntString(props.MaxIntValue),
			MinStr:    props.MinStrValue,
			MaxStr:    props.MaxStrValue,
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

type rowbufferColumnSummary struct {
	NullCount int64  `json:"null_count"`
	MaxLength int64  `json:"max_length"`
	MinInt    string `json:"min_int,omitempty"`
	MaxInt    string `json:"max_int,omitempty"`
	MinStr    string `json:"min_str,omitempty"`
	MaxStr    string `json:"max_str,omitempty"`
}

func bigIntString(n *big.Int) string {
	if n == nil {
		return ""
	}
	return n.String()
}
