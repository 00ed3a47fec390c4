// Package seo scores content fields for search friendliness using fixed
// length and count thresholds. Scores are heuristics in the 0-100 range and
// deterministic over current field values.
package seo

import (
	"math"
	"strings"
)

// TitleScore: 100 when length is over 10 and at most 70 characters.
func TitleScore(title string) int {
	n := len(title)
	if n > 10 && n <= 70 {
		return 100
	}
	return 50
}

// MetaDescriptionScore: 100 when length is over 120 and at most 160.
func MetaDescriptionScore(desc string) int {
	n := len(desc)
	if n > 120 && n <= 160 {
		return 100
	}
	return 60
}

// KeywordsScore: 90 when the comma-separated list holds at least 3 keywords.
func KeywordsScore(keywords string) int {
	count := 0
	for _, k := range strings.Split(keywords, ",") {
		if strings.TrimSpace(k) != "" {
			count++
		}
	}
	if count >= 3 {
		return 90
	}
	return 70
}

// ContentScore: 95 when the body exceeds 300 characters. Applies to blog
// posts and CMS pages only.
func ContentScore(content string) int {
	if len(content) > 300 {
		return 95
	}
	return 65
}

// Overall is the unweighted mean of the applicable component scores, rounded
// to the nearest integer.
func Overall(scores ...int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}
