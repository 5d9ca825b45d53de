// Command plan_audit fetches a degree program from the curriculum store, runs
// the availability resolver over its subjects and reports every subject whose
// stored status disagrees with the derived one. Strong statuses (in progress,
// final pending, passed) are never flagged.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/acadify/curricula-api/internal/models"
	"github.com/acadify/curricula-api/internal/planner"
	"github.com/acadify/curricula-api/internal/storeclient"
	"github.com/acadify/curricula-api/pkg/config"
)

type drift struct {
	Subject models.Subject
	Derived models.Status
}

func main() {
	var (
		storeBase  string
		programIDs string
		timeout    time.Duration
	)

	flag.StringVar(&storeBase, "store-base", "http://localhost:3000", "Curriculum store base URL")
	flag.StringVar(&programIDs, "programs", "", "Comma-separated degree program IDs to audit")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	ids := splitIDs(programIDs)
	if len(ids) == 0 {
		log.Fatal("no program IDs given, use -programs=id1,id2")
	}

	client := storeclient.New(config.StoreConfig{
		BaseURL: strings.TrimRight(storeBase, "/"),
		Timeout: timeout,
	}, zap.NewNop(), nil)

	ctx := context.Background()
	total := 0

	for _, id := range ids {
		program, err := client.FetchProgram(ctx, id)
		if err != nil {
			log.Fatalf("failed to fetch program %s: %v", id, err)
		}

		drifts := auditProgram(program.Subjects)
		total += len(drifts)
		printReport(program, drifts)
	}

	fmt.Printf("Stale statuses: %d\n", total)
	if total > 0 {
		os.Exit(1)
	}
}

func auditProgram(subjects []models.Subject) []drift {
	resolved := planner.Resolve(subjects)

	var drifts []drift
	for i, subject := range subjects {
		if subject.Status.Strong() {
			continue
		}
		if resolved[i].Status != subject.Status {
			drifts = append(drifts, drift{Subject: subject, Derived: resolved[i].Status})
		}
	}
	return drifts
}

func splitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

func printReport(program *models.DegreeProgram, drifts []drift) {
	fmt.Printf("Program %s (%s): %d subjects, %d stale\n",
		program.ID, program.Name, len(program.Subjects), len(drifts))
	for _, d := range drifts {
		fmt.Printf("  [STALE] %s %q stored=%s derived=%s\n",
			d.Subject.ID, d.Subject.Name, d.Subject.Status, d.Derived)
	}
}
