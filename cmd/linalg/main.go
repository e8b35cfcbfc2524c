// Package main provides the linalg command-line tool.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/linalg/linalg"
	"github.com/born-ml/linalg/tensor"
)

const version = "v0.1.0-dev"

var (
	upper  bool
	single bool
)

var rootCmd = &cobra.Command{
	Use:           "linalg",
	Short:         "Batched linear-algebra kernels",
	Long:          `Command-line frontend for the linalg kernel library.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("linalg %s\n", version)
	},
}

var factorCmd = &cobra.Command{
	Use:   "factor [file]",
	Short: "Cholesky-factor a square matrix",
	Long: `Reads a whitespace-separated square matrix (one row per line, '#' starts
a comment) from a file or stdin and prints its Cholesky factor.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		data, n, err := readMatrix(in)
		if err != nil {
			return err
		}

		eng := linalg.New()
		eng.Upper = upper

		var a *tensor.RawTensor
		if single {
			data32 := make([]float32, len(data))
			for i, v := range data {
				data32[i] = float32(v)
			}
			a, err = tensor.FromSlice(data32, tensor.Shape{n, n}, tensor.CPU)
		} else {
			a, err = tensor.FromSlice(data, tensor.Shape{n, n}, tensor.CPU)
		}
		if err != nil {
			return err
		}

		factor, err := eng.Decompose(a)
		if err != nil {
			return err
		}

		printMatrix(os.Stdout, factor, n)
		return nil
	},
}

// readMatrix parses one matrix row per non-empty line and returns the
// entries in row-major order together with the matrix size.
func readMatrix(r io.Reader) ([]float64, int, error) {
	var (
		data []float64
		n    = -1
		rows int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if n == -1 {
			n = len(fields)
		} else if len(fields) != n {
			return nil, 0, fmt.Errorf("row %d has %d entries, expected %d", rows+1, len(fields), n)
		}
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, 0, fmt.Errorf("row %d: invalid entry %q", rows+1, field)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	if rows == 0 {
		return nil, 0, fmt.Errorf("empty input")
	}
	if rows != n {
		return nil, 0, fmt.Errorf("matrix is %dx%d, expected square", rows, n)
	}
	return data, n, nil
}

// printMatrix writes the factor one row per line.
func printMatrix(w io.Writer, t *tensor.RawTensor, n int) {
	at := func(i int) float64 { return t.AsFloat64()[i] }
	if t.DType() == tensor.Float32 {
		at = func(i int) float64 { return float64(t.AsFloat32()[i]) }
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%.9g", at(i*n+j))
		}
		fmt.Fprintln(w)
	}
}

func main() {
	factorCmd.Flags().BoolVar(&upper, "upper", false, "emit the upper factor U instead of L")
	factorCmd.Flags().BoolVar(&single, "f32", false, "compute in single precision")
	rootCmd.AddCommand(factorCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
