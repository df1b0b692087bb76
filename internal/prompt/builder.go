// Package prompt assembles the system/user prompt pair for each completion.
// Everything here is pure: same inputs, same prompt, no network, no clock.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"reex.app/server/internal/model"
)

const (
	// Per-file excerpt budgets keep token usage bounded even for
	// repositories with large manifests or lockfiles.
	explainKeyFileBudget = 2000
	chatKeyFileBudget    = 1000
)

const explainSystem = `You are an expert software engineer and technical writer with deep knowledge of modern development practices. You analyze GitHub repositories and produce clear, structured technical write-ups for developers who want to understand or contribute to a project.`

const explainInstructions = `Provide a detailed, professional analysis in this format:

## Project Overview
A clear, concise summary of what this project does and its main purpose.

## Architecture & Technology Stack
Based on the files and structure, identify the programming languages, frameworks and libraries, build tools and configuration, storage solutions, and deployment setup.

## Project Structure
Explain the key directories and their purposes based on the file structure.

## Key Dependencies & Tools
List and explain important dependencies from the manifest files.

## Getting Started
Explain how to set up and run this project locally.

## Notable Features & Implementation Details
Highlight interesting technical decisions, patterns, or unique aspects of the codebase.

## Development Workflow
Based on configuration files, explain the development, testing, and deployment process.

Write in a professional, informative tone. Focus on technical accuracy and practical insights.`

const chatGroundedSystem = `You are ReEx, an AI assistant specialized in explaining code repositories. You have context about a GitHub repository below. Answer the user's question about this repository with detailed, technical insights, using the file contents and structure to provide specific, accurate information.`

const chatGenericSystem = `You are ReEx, an AI assistant specialized in explaining code repositories. Answer the user's question about software development, GitHub repositories, or coding in general.`

// Explain builds the prompt pair for the initial repository explanation.
// Structure and key-file sections are included only when present, so the
// minimal README-only flow produces a smaller but equally valid prompt.
func Explain(repoURL string, rc model.RepoContext) (system, user string) {
	var b strings.Builder

	b.WriteString("Analyze this GitHub repository using all available information:\n\n")
	fmt.Fprintf(&b, "**Repository URL:** %s\n\n", repoURL)
	fmt.Fprintf(&b, "**README Content:**\n%s\n", rc.Readme)

	if rc.Structure != "" {
		fmt.Fprintf(&b, "\n**Repository Structure:**\n%s\n", rc.Structure)
	}
	if len(rc.KeyFiles) > 0 {
		b.WriteString("\n**Key Configuration & Project Files:**\n")
		b.WriteString(formatKeyFiles(rc.KeyFiles, explainKeyFileBudget))
	}

	b.WriteString("\n")
	b.WriteString(explainInstructions)

	return explainSystem, b.String()
}

// Chat builds the prompt pair for a follow-up question. With repository
// context supplied the system preamble embeds it; without any, the
// assistant answers ungrounded general questions.
func Chat(message string, rc *model.RepoContext) (system, user string) {
	if rc.Empty() {
		return chatGenericSystem, message
	}

	var b strings.Builder
	b.WriteString(chatGroundedSystem)
	b.WriteString("\n\n")

	if rc.Readme != "" {
		fmt.Fprintf(&b, "**Repository README:**\n%s\n\n", rc.Readme)
	}
	if rc.Structure != "" {
		fmt.Fprintf(&b, "**Repository Structure:**\n%s\n\n", rc.Structure)
	}
	if len(rc.KeyFiles) > 0 {
		b.WriteString("**Key Files:**\n")
		b.WriteString(formatKeyFiles(rc.KeyFiles, chatKeyFileBudget))
	}

	return strings.TrimRight(b.String(), "\n"), message
}

// formatKeyFiles renders key files as fenced excerpts, sorted by filename
// so the prompt is deterministic regardless of map iteration order.
func formatKeyFiles(files map[string]string, budget int) string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "### %s\n```\n%s\n```\n\n", name, truncate(files[name], budget))
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
