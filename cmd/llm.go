package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sparklearn/internal/llm"
	"github.com/abhisek/sparklearn/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().ListLLMRequests(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-16s  %-28s  %-6s  %-6s  %-7s  %-9s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Cost", "OK")
		fmt.Println(strings.Repeat("─", 110))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-16s  %-28s  %-6d  %-6d  %-7d  %-9s  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				llm.FormatCost(e.Model, e.InputTokens, e.OutputTokens),
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMRequest(cmd.Context(), id)
		if err != nil {
			return err
		}

		sep := strings.Repeat("─", 60)
		fmt.Printf("ID:        %d\n", e.ID)
		fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", e.Provider)
		fmt.Printf("Model:     %s\n", e.Model)
		fmt.Printf("Purpose:   %s\n", e.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Cost:      %s\n", llm.FormatCost(e.Model, e.InputTokens, e.OutputTokens))
		fmt.Printf("Latency:   %dms\n", e.LatencyMs)
		fmt.Printf("Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", e.ErrorMessage)
		}

		for _, part := range []struct{ title, body string }{
			{"REQUEST", e.RequestBody},
			{"RESPONSE", e.ResponseBody},
		} {
			fmt.Println()
			fmt.Println(sep)
			fmt.Println(part.title)
			fmt.Println(sep)
			if part.body == "" {
				fmt.Println("(not captured)")
			} else {
				fmt.Println(part.body)
			}
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost per purpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().ListLLMRequests(cmd.Context(), 0)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		rows := usageByPurpose(events)
		fmt.Printf("%-16s  %6s  %10s  %10s  %8s  %10s\n", "Purpose", "Calls", "Input", "Output", "Avg Ms", "Cost")
		fmt.Println(strings.Repeat("─", 72))

		var total usage
		for _, r := range rows {
			fmt.Printf("%-16s  %6d  %10d  %10d  %8d  %10s\n",
				r.key, r.calls, r.in, r.out, r.latency/int64(r.calls), formatUSD(r.cost, r.unpriced))
			total.add(r)
		}
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-16s  %6d  %10d  %10d  %8s  %10s\n",
			"TOTAL", total.calls, total.in, total.out, "", formatUSD(total.cost, total.unpriced))
		return nil
	},
}

type usage struct {
	key      string
	calls    int
	in, out  int
	latency  int64
	cost     float64
	unpriced bool
}

func (u *usage) add(o usage) {
	u.calls += o.calls
	u.in += o.in
	u.out += o.out
	u.latency += o.latency
	u.cost += o.cost
	u.unpriced = u.unpriced || o.unpriced
}

func usageByPurpose(events []store.LLMRequestEvent) []usage {
	byKey := map[string]*usage{}
	for _, e := range events {
		u, ok := byKey[e.Purpose]
		if !ok {
			u = &usage{key: e.Purpose}
			byKey[e.Purpose] = u
		}
		row := usage{calls: 1, in: e.InputTokens, out: e.OutputTokens, latency: e.LatencyMs}
		if c := llm.LookupCost(e.Model); c != nil {
			row.cost = c.Cost(e.InputTokens, e.OutputTokens)
		} else {
			row.unpriced = true
		}
		u.add(row)
	}

	out := make([]usage, 0, len(byKey))
	for _, u := range byKey {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].calls > out[j].calls })
	return out
}

func formatUSD(usd float64, partial bool) string {
	s := fmt.Sprintf("$%.4f", usd)
	if partial {
		s += "*"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	llmListCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	llmListCmd.Flags().String("purpose", "", "Filter by purpose (e.g. explanation, quiz)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
