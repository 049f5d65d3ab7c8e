package generator

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shenanigigs/jobstats/internal/errors"
)

// PromptCount asks how many listings to generate. Blank input, end of input
// and anything ParseCount rejects select defaultCount with a notice.
func PromptCount(in io.Reader, out io.Writer, defaultCount int) int {
	fmt.Fprintf(out, "\nHow many job listings to generate? (default: %d): ", defaultCount)

	line, _ := bufio.NewReader(in).ReadString('\n')
	if strings.TrimSpace(line) == "" {
		fmt.Fprintf(out, "Using default: %d jobs\n", defaultCount)
		return defaultCount
	}

	count, err := ParseCount(line)
	if err != nil {
		fmt.Fprintf(out, "Using default: %d jobs\n", defaultCount)
		return defaultCount
	}
	return count
}

func ParseCount(input string) (int, error) {
	input = strings.TrimSpace(input)

	count, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("%q is not a number", input), err)
	}
	if count < 0 {
		return 0, errors.InvalidInput(fmt.Sprintf("job count must not be negative, got %d", count), nil)
	}
	return count, nil
}
