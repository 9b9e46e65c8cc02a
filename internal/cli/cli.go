// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/thesuzerain/advent-of-code/internal/config"
	"github.com/thesuzerain/advent-of-code/internal/output"
	"github.com/thesuzerain/advent-of-code/internal/services/clipboard"
	"github.com/thesuzerain/advent-of-code/internal/solver"
	"github.com/thesuzerain/advent-of-code/internal/types"
	"github.com/thesuzerain/advent-of-code/internal/utils"
)

const (
	partFlagName    = "part"
	inputFlagName   = "input"
	formatFlagName  = "format"
	copyFlagName    = "copy"
	configFlagName  = "config"
	versionFlagName = "version"
	versionTemplate = "advent version: %s\n"

	rootUse              = "advent"
	rootShortDescription = "advent command line interface"
	rootLongDescription  = `advent solves the 2022 programming-puzzle calendar.
Each day reads a static input file and prints one answer per puzzle part.
Use --part to select a part, --format to select raw or json output, and --version to print the application version.`

	solveUse              = types.CommandSolve + " [days...]"
	solveAlias            = "s"
	solveShortDescription = "solve puzzle days (" + solveAlias + ")"
	solveLongDescription  = `Solve the listed days, or every registered day when none are given.
Inputs are read from the input directory as day<N>input.txt files.`
	solveUsageExample = `  # Solve both parts of day 7
  advent solve 7

  # Solve part 2 of every day with JSON output
  advent solve --part 2 --format json`

	listUse              = types.CommandList
	listAlias            = "l"
	listShortDescription = "list registered puzzle days (" + listAlias + ")"

	versionFlagDescription = "display application version"
	partFlagDescription    = "puzzle part to solve (1, 2, or both)"
	inputFlagDescription   = "directory holding puzzle input files"
	formatFlagDescription  = "output format"
	copyFlagDescription    = "copy rendered answers to the clipboard"
	configFlagDescription  = "path to a configuration file"

	invalidPartMessage   = "invalid part value '%s'"
	invalidFormatMessage = "invalid format value '%s'"
	invalidDayMessage    = "invalid day argument '%s'"
)

// Execute runs the advent application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(
		createSolveCommand(),
		createListCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// solveOptions stores flag values for the solve command.
type solveOptions struct {
	part              string
	inputDirectory    string
	outputFormat      string
	copyToClipboard   bool
	configurationPath string
}

// createSolveCommand returns the solve subcommand.
func createSolveCommand() *cobra.Command {
	var options solveOptions

	solveCommand := &cobra.Command{
		Use:     solveUse,
		Aliases: []string{solveAlias},
		Short:   solveShortDescription,
		Long:    solveLongDescription,
		Example: solveUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runSolve(command, arguments, options)
		},
	}
	solveCommand.Flags().StringVarP(&options.part, partFlagName, "p", types.PartBoth, partFlagDescription)
	solveCommand.Flags().StringVarP(&options.inputDirectory, inputFlagName, "i", "", inputFlagDescription)
	solveCommand.Flags().StringVarP(&options.outputFormat, formatFlagName, "f", "", formatFlagDescription)
	solveCommand.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	solveCommand.Flags().StringVar(&options.configurationPath, configFlagName, "", configFlagDescription)
	return solveCommand
}

// createListCommand returns the list subcommand.
func createListCommand() *cobra.Command {
	var outputFormat string = types.FormatRaw

	listCommand := &cobra.Command{
		Use:     listUse,
		Aliases: []string{listAlias},
		Short:   listShortDescription,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			if !output.IsSupportedFormat(outputFormat) {
				return fmt.Errorf(invalidFormatMessage, outputFormat)
			}
			descriptions := make([]types.DayDescription, 0)
			for _, solution := range solver.Registry() {
				descriptions = append(descriptions, solution.Describe())
			}
			rendered, renderError := output.RenderDayList(descriptions, outputFormat)
			if renderError != nil {
				return renderError
			}
			command.Print(rendered)
			return nil
		},
	}
	listCommand.Flags().StringVarP(&outputFormat, formatFlagName, "f", types.FormatRaw, formatFlagDescription)
	return listCommand
}

// requestedParts converts the part flag into the part numbers to solve.
func requestedParts(part string) ([]int, error) {
	switch part {
	case types.PartOne:
		return []int{solver.PartOne}, nil
	case types.PartTwo:
		return []int{solver.PartTwo}, nil
	case types.PartBoth:
		return []int{solver.PartOne, solver.PartTwo}, nil
	}
	return nil, fmt.Errorf(invalidPartMessage, part)
}

// requestedSolutions resolves day arguments into registered solutions,
// defaulting to every registered day.
func requestedSolutions(arguments []string) ([]solver.Solution, error) {
	if len(arguments) == 0 {
		return solver.Registry(), nil
	}
	solutions := make([]solver.Solution, 0, len(arguments))
	for _, argument := range arguments {
		day, parseError := strconv.Atoi(argument)
		if parseError != nil {
			return nil, fmt.Errorf(invalidDayMessage, argument)
		}
		solution, lookupError := solver.Lookup(day)
		if lookupError != nil {
			return nil, lookupError
		}
		solutions = append(solutions, solution)
	}
	return solutions, nil
}

// solverSettings maps resolved configuration onto the solver tunables.
func solverSettings(resolved config.ResolvedConfiguration) solver.Settings {
	settings := solver.Settings{}
	settings.Signal.PacketMarkerLength = resolved.PacketMarkerLength
	settings.Signal.MessageMarkerLength = resolved.MessageMarkerLength
	settings.Device.SizeThreshold = resolved.SizeThreshold
	settings.Device.DiskCapacity = resolved.DiskCapacity
	settings.Device.UpdateSpace = resolved.UpdateSpace
	settings.Rope.ShortKnots = resolved.ShortKnots
	settings.Rope.LongKnots = resolved.LongKnots
	return settings
}

// runSolve executes the solve command: it resolves configuration, solves the
// requested days in parallel, and renders the answers in day order.
func runSolve(command *cobra.Command, arguments []string, options solveOptions) error {
	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		ExplicitFilePath: options.configurationPath,
	})
	if configurationError != nil {
		return configurationError
	}
	resolved := configuration.Resolve()
	if options.inputDirectory != "" {
		resolved.InputDirectory = options.inputDirectory
	}
	if options.outputFormat != "" {
		resolved.Format = options.outputFormat
	}
	if options.copyToClipboard {
		resolved.Clipboard = true
	}
	if !output.IsSupportedFormat(resolved.Format) {
		return fmt.Errorf(invalidFormatMessage, resolved.Format)
	}

	parts, partsError := requestedParts(options.part)
	if partsError != nil {
		return partsError
	}
	solutions, solutionsError := requestedSolutions(arguments)
	if solutionsError != nil {
		return solutionsError
	}
	settings := solverSettings(resolved)

	// Days are independent; solve them in parallel and keep day order in
	// the rendered output.
	answersByDay := make([][]types.Answer, len(solutions))
	var group errgroup.Group
	for solutionIndex, solution := range solutions {
		solutionIndex, solution := solutionIndex, solution
		group.Go(func() error {
			inputs, inputError := solver.ReadInputs(resolved.InputDirectory, solution.InputFiles)
			if inputError != nil {
				return inputError
			}
			dayAnswers := make([]types.Answer, 0, len(parts))
			for _, part := range parts {
				answer, solveError := solution.SolvePart(inputs, part, settings)
				if solveError != nil {
					return solveError
				}
				dayAnswers = append(dayAnswers, answer)
			}
			answersByDay[solutionIndex] = dayAnswers
			return nil
		})
	}
	if waitError := group.Wait(); waitError != nil {
		return waitError
	}

	answers := make([]types.Answer, 0, len(solutions)*len(parts))
	for _, dayAnswers := range answersByDay {
		answers = append(answers, dayAnswers...)
	}
	rendered, renderError := output.RenderAnswers(answers, resolved.Format)
	if renderError != nil {
		return renderError
	}
	command.Print(rendered)

	if resolved.Clipboard {
		if copyError := clipboard.NewService().Copy(rendered); copyError != nil {
			return fmt.Errorf("copy answers to clipboard: %w", copyError)
		}
	}
	return nil
}
