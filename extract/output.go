package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"golang.org/x/term"

	"scssx/common"
	"scssx/skeleton"
	"scssx/state"
)

// replaced in tests
var (
	writeClipboard = clipboard.WriteAll
	isTerminal     = func(r io.Reader) bool {
		f, ok := r.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
)

var askChoices = []common.OutputMethod{
	common.OutputMethodClipboard,
	common.OutputMethodPreview,
	common.OutputMethodFile,
}

// askMethod prompts user for output method. Without terminal there is nobody
// to answer, so result is previewed.
func askMethod(env *state.LocalEnv) (common.OutputMethod, error) {
	if !isTerminal(env.Stdin) {
		return common.OutputMethodPreview, nil
	}

	fmt.Fprintln(env.Stderr, "Where should generated stylesheet go?")
	for i, m := range askChoices {
		fmt.Fprintf(env.Stderr, "  %d) %s\n", i+1, m)
	}
	fmt.Fprintf(env.Stderr, "Choice [1]: ")

	line, err := bufio.NewReader(env.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("unable to read answer: %w", err)
	}
	switch answer := strings.ToLower(strings.TrimSpace(line)); answer {
	case "":
		return askChoices[0], nil
	case "1", "2", "3":
		return askChoices[answer[0]-'1'], nil
	default:
		if m, err := common.ParseOutputMethod(answer); err == nil && m != common.OutputMethodAsk {
			return m, nil
		}
		return 0, fmt.Errorf("unknown output choice %q", answer)
	}
}

// deliver puts generated text where method says. It returns name of the
// destination for logging. Key names produced file in debug report.
func deliver(env *state.LocalEnv, res *skeleton.Result, src, dst, key string, method common.OutputMethod, log *zap.Logger) (string, error) {
	if method == common.OutputMethodAsk {
		m, err := askMethod(env)
		if err != nil {
			return "", err
		}
		log.Debug("Output method selected", zap.Stringer("method", m))
		method = m
	}

	switch method {
	case common.OutputMethodClipboard:
		if err := writeClipboard(res.Text); err != nil {
			return "", fmt.Errorf("unable to write to clipboard: %w", err)
		}
		return "clipboard", nil
	case common.OutputMethodPreview:
		if _, err := fmt.Fprintln(env.Stdout, res.Text); err != nil {
			return "", fmt.Errorf("unable to write preview: %w", err)
		}
		return "STDOUT", nil
	case common.OutputMethodFile:
		outputName := buildOutputPath(src, res.Lang, dst, env)
		if err := writeFile(outputName, res.Text+"\n", env.Overwrite, log); err != nil {
			return "", err
		}
		if env.Rpt != nil {
			env.Rpt.Store(key+filepath.Ext(outputName), outputName)
		}
		return outputName, nil
	}
	return "", fmt.Errorf("unsupported output method %s", method)
}

func writeFile(outputName, text string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(outputName); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, []byte(text), 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}
