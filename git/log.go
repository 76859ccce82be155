package git

import (
	"fmt"
	"strings"
)

type GraphLine struct {
	GraphChars string
	Hash       string
	Refs       string
	Message    string
	IsCommit   bool
}

// GetGraph returns up to maxCount commits of the decorated graph, skipping
// the first skip commits.
func GetGraph(repoPath string, maxCount, skip int) ([]GraphLine, error) {
	args := []string{"log", "--graph", "--all", "--decorate=short",
		"--color=never", "--format=COMMIT:%h|%d|%s", fmt.Sprintf("-n%d", maxCount)}
	if skip > 0 {
		args = append(args, fmt.Sprintf("--skip=%d", skip))
	}
	out, err := RunGit(repoPath, args...)
	if err != nil {
		return nil, err
	}
	return ParseGraph(out), nil
}

// ParseGraph parses `git log --graph` output produced with the
// COMMIT:%h|%d|%s format.
func ParseGraph(out string) []GraphLine {
	if out == "" {
		return nil
	}
	var lines []GraphLine
	for _, raw := range strings.Split(out, "\n") {
		lines = append(lines, parseLine(raw))
	}
	return lines
}

func parseLine(line string) GraphLine {
	idx := strings.Index(line, "COMMIT:")
	if idx == -1 {
		return GraphLine{GraphChars: line, IsCommit: false}
	}

	graphChars := line[:idx]
	rest := line[idx+len("COMMIT:"):]

	parts := strings.SplitN(rest, "|", 3)
	gl := GraphLine{
		GraphChars: graphChars,
		IsCommit:   true,
	}
	if len(parts) >= 1 {
		gl.Hash = strings.TrimSpace(parts[0])
	}
	if len(parts) >= 2 {
		gl.Refs = strings.TrimSpace(parts[1])
	}
	if len(parts) >= 3 {
		gl.Message = strings.TrimSpace(parts[2])
	}
	return gl
}

// CommitInfo is one commit of a flat log.
type CommitInfo struct {
	Hash         string
	Author       string
	RelativeDate string
	Subject      string
}

// GetCommits returns the last count commits reachable from HEAD.
func GetCommits(repoPath string, count int) ([]CommitInfo, error) {
	out, err := RunGit(repoPath, "log", fmt.Sprintf("-n%d", count), "--format=%h|%an|%ar|%s")
	if err != nil {
		return nil, err
	}
	return parseCommits(out), nil
}

func parseCommits(out string) []CommitInfo {
	var commits []CommitInfo
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 4)
		if len(parts) != 4 {
			continue
		}
		commits = append(commits, CommitInfo{
			Hash:         parts[0],
			Author:       parts[1],
			RelativeDate: parts[2],
			Subject:      parts[3],
		})
	}
	return commits
}
