package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	convolve "github.com/gcslaoli/convolve-go"
)

// go run ./cmd/convolve -in photo.jpg
// go run ./cmd/convolve -in photo.bmp -name edges -dir out
// go run ./cmd/convolve -in tiny.png -name tiny -preview -border clamp

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("convolve", flag.ContinueOnError)
	fs.SetOutput(stderr)

	input := fs.String("in", "input.jpg", "Path to the source image (bmp/png/jpg/gif/tiff/webp)")
	inputBase64 := fs.String("inbase64", "", "Base64 image input (optionally data URL); overrides -in")
	name := fs.String("name", "", "Output name; the file is written as outFile_<name>.jpeg (prompts when empty)")
	dir := fs.String("dir", "", "Directory for the output file (defaults to the working directory)")
	borderFlag := fs.String("border", "zero", "Border policy for the 3x3 window: zero or clamp")
	preview := fs.Bool("preview", false, "Print the result as true-color terminal cells")
	verbose := fs.Bool("v", false, "Log debug output to stderr")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *verbose {
		convolve.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer convolve.SetLogger(nil)
	}

	border, err := convolve.ParseBorder(*borderFlag)
	if err != nil {
		fmt.Fprintf(stderr, "parse flags: %v\n", err)
		return 2
	}

	var (
		grid   *convolve.Grid
		source string
	)

	if *inputBase64 != "" {
		grid, _, err = convolve.DecodeBase64Image(*inputBase64)
		source = "base64"
	} else {
		grid, err = convolve.LoadImage(*input)
		source = *input
	}
	if err != nil {
		fmt.Fprintf(stderr, "load input: %v\n", err)
		return 1
	}

	engine := convolve.NewEngine(convolve.WithBorder(border))
	result, err := engine.EdgeMap(grid)
	if err != nil {
		fmt.Fprintf(stderr, "edge map: %v\n", err)
		return 1
	}

	if *preview {
		if err := convolve.WriteANSI(stdout, result); err != nil {
			fmt.Fprintf(stderr, "preview: %v\n", err)
			return 1
		}
	}

	outName := *name
	if outName == "" {
		fmt.Fprintln(stdout, "Enter the name of your image")
		outName, err = readLine(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "read name: %v\n", err)
			return 1
		}
	}

	outPath, err := convolve.SaveImage(result, *dir, outName)
	if err != nil {
		fmt.Fprintf(stderr, "save output: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, "Image saved")
	convolve.Logger().Info("processed image", "source", source, "output", outPath, "border", border.String())
	return 0
}

// readLine returns one line from r without its line ending. EOF after a
// partial line is not an error; EOF with nothing read yields an empty name.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
