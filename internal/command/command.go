package command

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/minesweeper-client/internal/apperror"
	"github.com/rocketscienceinc/minesweeper-client/internal/config"
	"github.com/rocketscienceinc/minesweeper-client/internal/entity"
)

const (
	Name = "minesweeper-client"

	DefaultConfigPath = "config.yml"
)

type Kind int

const (
	KindNewGame Kind = iota + 1
	KindGetGame
	KindListGames
	KindAction
)

var (
	errNoOperation    = errors.New("one of -new, -get, -list, -mark, -flag, -swipe is required")
	errManyOperations = errors.New("only one of -new, -get, -list, -mark, -flag, -swipe may be given")
	errMissingOption  = errors.New("missing required option")
	errBadValue       = errors.New("bad option value")
)

// Command is one parsed invocation of the client.
type Command struct {
	ConfigPath string

	Host     string
	Port     string
	Username string
	Password string

	Kind Kind

	// KindNewGame
	Rows, Cols, Mines int

	// KindGetGame and KindAction
	GameID int64

	// KindAction
	Action   entity.Action
	Row, Col int
}

type operation struct {
	names []string
	kind  Kind
	value *string
}

// Parse - reads the command line. Errors wrap apperror.ErrUsage; the usage text is written to output.
func Parse(args []string, output io.Writer) (*Command, error) {
	cmd := &Command{}

	fs := flag.NewFlagSet(Name, flag.ContinueOnError)
	fs.SetOutput(output)

	stringVar(fs, &cmd.ConfigPath, DefaultConfigPath, "Path of the YAML config file", "config", "c")
	stringVar(fs, &cmd.Host, "", "Hostname of Minesweeper API server", "host", "h")
	stringVar(fs, &cmd.Port, "", "Port of Minesweeper API server", "port", "p")
	stringVar(fs, &cmd.Username, "", "User name", "username", "u")
	stringVar(fs, &cmd.Password, "", "Password", "password", "pw")

	var newGame, getGame, mark, flagCell, swipe string
	var list bool

	stringVar(fs, &newGame, "", "Creates a new game of `size` = <rows,cols,mines>", "new", "n")
	stringVar(fs, &getGame, "", "Gets game `id`", "get", "g")
	fs.BoolVar(&list, "list", false, "List user games")
	fs.BoolVar(&list, "l", false, "List user games")
	stringVar(fs, &mark, "", "Marks a `cell` = <game_id,row,col>", "mark", "m")
	stringVar(fs, &flagCell, "", "Flags a `cell` = <game_id,row,col>", "flag", "f")
	stringVar(fs, &swipe, "", "Swipes (reveals) a `cell` = <game_id,row,col>", "swipe", "s", "reveal")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage of %s:\n", Name)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrUsage, err)
	}

	if fs.NArg() > 0 {
		return nil, usageError(fs, fmt.Errorf("%w: unexpected argument %q", errBadValue, fs.Arg(0)))
	}

	operations := []operation{
		{names: []string{"new", "n"}, kind: KindNewGame, value: &newGame},
		{names: []string{"get", "g"}, kind: KindGetGame, value: &getGame},
		{names: []string{"list", "l"}, kind: KindListGames},
		{names: []string{"mark", "m"}, kind: KindAction, value: &mark},
		{names: []string{"flag", "f"}, kind: KindAction, value: &flagCell},
		{names: []string{"swipe", "s", "reveal"}, kind: KindAction, value: &swipe},
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var selected *operation
	for i := range operations {
		if !anySet(set, operations[i].names) {
			continue
		}
		if selected != nil {
			return nil, usageError(fs, errManyOperations)
		}
		selected = &operations[i]
	}

	if selected == nil {
		return nil, usageError(fs, errNoOperation)
	}

	cmd.Kind = selected.kind

	var err error
	switch selected.value {
	case &newGame:
		err = cmd.parseSize(newGame)
	case &getGame:
		cmd.GameID, err = strconv.ParseInt(strings.TrimSpace(getGame), 10, 64)
		if err != nil {
			err = fmt.Errorf("%w: game id %q", errBadValue, getGame)
		}
	case &mark:
		err = cmd.parseCell(mark, entity.ActionMark)
	case &flagCell:
		err = cmd.parseCell(flagCell, entity.ActionFlag)
	case &swipe:
		err = cmd.parseCell(swipe, entity.ActionReveal)
	}

	if err != nil {
		return nil, usageError(fs, err)
	}

	return cmd, nil
}

// Resolve - fills connection options missing from the command line with config values
// and checks that all of them are set.
func (that *Command) Resolve(conf *config.Config) error {
	fill(&that.Host, conf.Host)
	fill(&that.Port, conf.Port)
	fill(&that.Username, conf.Username)
	fill(&that.Password, conf.Password)

	var missing []string
	for _, opt := range []struct {
		name  string
		value string
	}{
		{"host", that.Host},
		{"port", that.Port},
		{"username", that.Username},
		{"password", that.Password},
	} {
		if opt.value == "" {
			missing = append(missing, opt.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %w: %s", apperror.ErrUsage, errMissingOption, strings.Join(missing, ", "))
	}

	if _, err := strconv.ParseUint(that.Port, 10, 16); err != nil {
		return fmt.Errorf("%w: %w: port %q", apperror.ErrUsage, errBadValue, that.Port)
	}

	return nil
}

func (that *Command) parseSize(value string) error {
	numbers, err := splitInts(value, 3)
	if err != nil {
		return fmt.Errorf("size %w", err)
	}

	that.Rows, that.Cols, that.Mines = numbers[0], numbers[1], numbers[2]

	return nil
}

func (that *Command) parseCell(value string, action entity.Action) error {
	numbers, err := splitInts(value, 3)
	if err != nil {
		return fmt.Errorf("cell %w", err)
	}

	that.GameID = int64(numbers[0])
	that.Row, that.Col = numbers[1], numbers[2]
	that.Action = action

	return nil
}

func splitInts(value string, count int) ([]int, error) {
	parts := strings.Split(value, ",")
	if len(parts) != count {
		return nil, fmt.Errorf("%w: expected %d comma separated numbers, got %q", errBadValue, count, value)
	}

	numbers := make([]int, 0, count)
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errBadValue, part)
		}
		numbers = append(numbers, n)
	}

	return numbers, nil
}

func usageError(fs *flag.FlagSet, err error) error {
	fmt.Fprintf(fs.Output(), "Parsing failed.  Reason: %s\n", err)
	fs.Usage()

	return fmt.Errorf("%w: %w", apperror.ErrUsage, err)
}

func stringVar(fs *flag.FlagSet, p *string, value, usage string, names ...string) {
	for _, name := range names {
		fs.StringVar(p, name, value, usage)
	}
}

func anySet(set map[string]bool, names []string) bool {
	for _, name := range names {
		if set[name] {
			return true
		}
	}
	return false
}

func fill(dst *string, fallback string) {
	if *dst == "" {
		*dst = fallback
	}
}
