package common

import (
	"context"
	"fmt"
	"os"

	"resumescan/internal/ai"
	"resumescan/internal/errors"
)

// ResumeOperationFunc is a generic function signature for any operation that
// consumes extracted resume text.
type ResumeOperationFunc[Output any] func(context.Context, string) (Output, error)

// RunResumeCommand encapsulates the common logic for resume-file based CLI
// commands: extract and validate the resume text, run the operation, then
// write the formatted output.
func RunResumeCommand[Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	resumePath string,
	operation ResumeOperationFunc[Output],
) error {
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	resumeText, err := fileProcessor.ReadResume(resumePath)
	if err != nil {
		return err
	}

	result, err := operation(ctx, resumeText)
	if err != nil {
		return err
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}

// ReportTokenUsage logs token usage from an AI operation, falling back to
// stderr when no logger is available.
func ReportTokenUsage(logger *errors.Logger, operation string, tokenUsage *ai.TokenUsage) {
	if tokenUsage == nil {
		return
	}
	if logger != nil {
		logger.Info("AI token usage",
			"operation", operation,
			"input_tokens", tokenUsage.InputTokens,
			"output_tokens", tokenUsage.OutputTokens,
			"total_tokens", tokenUsage.TotalTokens)
		return
	}
	fmt.Fprintf(os.Stderr, "AI token usage (%s): input=%d, output=%d, total=%d\n",
		operation, tokenUsage.InputTokens, tokenUsage.OutputTokens, tokenUsage.TotalTokens)
}
