package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SS-S3/repo-quality-tool/halstead"
	"github.com/SS-S3/repo-quality-tool/internal/history"
)

// =============================================================================
// 📤 结果输出
// =============================================================================

// countedResult 附带 n1/n2/N1/N2 的结果
type countedResult struct {
	halstead.Result   `yaml:",inline"`
	DistinctOperators int `json:"distinct_operators" yaml:"distinct_operators"`
	DistinctOperands  int `json:"distinct_operands" yaml:"distinct_operands"`
	TotalOperators    int `json:"total_operators" yaml:"total_operators"`
	TotalOperands     int `json:"total_operands" yaml:"total_operands"`
}

func withCounts(res *halstead.Result) countedResult {
	return countedResult{
		Result:            *res,
		DistinctOperators: res.Counts.DistinctOperators,
		DistinctOperands:  res.Counts.DistinctOperands,
		TotalOperators:    res.Counts.TotalOperators,
		TotalOperands:     res.Counts.TotalOperands,
	}
}

// writeResult 按格式写出单个结果，JSON 为单行
func writeResult(w io.Writer, format string, includeCounts bool, res *halstead.Result) error {
	var v any = res
	if includeCounts {
		v = withCounts(res)
	}

	switch format {
	case "yaml":
		return writeYAML(w, v)
	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "file\t%s\n", res.File)
		fmt.Fprintf(tw, "vocabulary\t%d\n", res.Vocabulary)
		fmt.Fprintf(tw, "length\t%d\n", res.Length)
		fmt.Fprintf(tw, "volume\t%s\n", res.Volume)
		fmt.Fprintf(tw, "difficulty\t%s\n", res.Difficulty)
		fmt.Fprintf(tw, "effort\t%s\n", res.Effort)
		if includeCounts {
			c := res.Counts
			fmt.Fprintf(tw, "distinct operators\t%d\n", c.DistinctOperators)
			fmt.Fprintf(tw, "distinct operands\t%d\n", c.DistinctOperands)
			fmt.Fprintf(tw, "total operators\t%d\n", c.TotalOperators)
			fmt.Fprintf(tw, "total operands\t%d\n", c.TotalOperands)
		}
		return tw.Flush()
	default:
		return json.NewEncoder(w).Encode(v)
	}
}

// errorRecord 失败时的占位结果，所有度量为 null
type errorRecord struct {
	Vocabulary *int           `json:"vocabulary" yaml:"vocabulary"`
	Length     *int           `json:"length" yaml:"length"`
	Volume     halstead.Value `json:"volume" yaml:"volume"`
	Difficulty halstead.Value `json:"difficulty" yaml:"difficulty"`
	Effort     halstead.Value `json:"effort" yaml:"effort"`
	File       string         `json:"file" yaml:"file"`
	Error      string         `json:"error" yaml:"error"`
}

// writeError 按格式写出失败记录
func writeError(w io.Writer, format, file string, cause error) error {
	rec := errorRecord{File: file, Error: cause.Error()}

	switch format {
	case "yaml":
		return writeYAML(w, rec)
	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "file\t%s\n", rec.File)
		fmt.Fprintf(tw, "error\t%s\n", rec.Error)
		return tw.Flush()
	default:
		return json.NewEncoder(w).Encode(rec)
	}
}

// =============================================================================
// 📜 历史输出
// =============================================================================

// historyEntry 历史记录的输出形式
type historyEntry struct {
	ID              string    `json:"id" yaml:"id"`
	Language        string    `json:"language" yaml:"language"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
	halstead.Result `yaml:",inline"`
}

// writeHistory 写出历史记录，JSON 为每条一行
func writeHistory(w io.Writer, format string, runs []history.Record) error {
	entries := make([]historyEntry, 0, len(runs))
	for _, r := range runs {
		entries = append(entries, historyEntry{
			ID:        r.ID,
			Language:  r.Language,
			CreatedAt: r.CreatedAt,
			Result:    *r.Result(),
		})
	}

	switch format {
	case "yaml":
		return writeYAML(w, entries)
	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CREATED\tLANGUAGE\tVOCABULARY\tLENGTH\tVOLUME\tDIFFICULTY\tEFFORT")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				e.CreatedAt.Format(time.RFC3339),
				e.Language,
				strconv.Itoa(e.Vocabulary),
				strconv.Itoa(e.Length),
				e.Volume, e.Difficulty, e.Effort,
			)
		}
		return tw.Flush()
	default:
		enc := json.NewEncoder(w)
		for _, e := range entries {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
