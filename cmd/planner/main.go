package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/web3-frozen/planner/internal/dates"
	"github.com/web3-frozen/planner/internal/model"
	"github.com/web3-frozen/planner/internal/planner"
	"github.com/web3-frozen/planner/internal/store"
	"github.com/web3-frozen/planner/internal/view"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	kv := openBackend(logger)
	defer kv.Close()
	st := store.New(kv, logger)

	if err := run(context.Background(), st, logger, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openBackend picks the persistence backend from the environment. A broken
// local database degrades to the in-process store rather than refusing to
// run; missing connection URLs for the external backends are fatal.
func openBackend(logger *slog.Logger) store.KV {
	switch backend := envOr("PLANNER_STORE", "sqlite"); backend {
	case "memory":
		return store.NewMemory()
	case "sqlite":
		path := envOr("PLANNER_DB_PATH", defaultDBPath())
		kv, err := store.NewSQLiteKV(path)
		if err != nil {
			logger.Warn("sqlite unavailable, data will not persist", "path", path, "error", err)
			return store.NewMemory()
		}
		return kv
	case "postgres":
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			logger.Error("DATABASE_URL is required for the postgres store")
			os.Exit(1)
		}
		kv, err := store.NewPostgresKV(dbURL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		if err := kv.Migrate(context.Background()); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		return kv
	case "redis":
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL is required for the redis store")
			os.Exit(1)
		}
		kv, err := store.NewRedisKV(redisURL)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		return kv
	default:
		logger.Error("unknown PLANNER_STORE", "value", backend)
		os.Exit(1)
		return nil
	}
}

func run(ctx context.Context, st *store.Store, logger *slog.Logger, cmd string, args []string) error {
	switch cmd {
	case "today":
		return showDay(ctx, st, logger, dates.Format(time.Now()))
	case "day":
		fs := flag.NewFlagSet("day", flag.ExitOnError)
		date := fs.String("date", dates.Format(time.Now()), "day to show (YYYY-MM-DD)")
		fs.Parse(args)
		return showDay(ctx, st, logger, *date)
	case "week":
		fs := flag.NewFlagSet("week", flag.ExitOnError)
		date := fs.String("date", dates.Format(time.Now()), "any day in the week to show")
		fs.Parse(args)
		return showWeek(ctx, st, logger, *date)
	case "stats":
		return showStats(ctx, st, logger)
	case "add":
		return addTask(ctx, st, logger, args)
	case "done":
		return toggleTask(ctx, st, logger, args)
	case "rm":
		return removeTask(ctx, st, logger, args)
	case "goals":
		return showGoals(ctx, st, logger, args)
	case "goal-add":
		return addGoal(ctx, st, logger, args)
	case "goal-progress":
		return setGoalProgress(ctx, st, logger, args)
	case "goal-rm":
		return removeGoal(ctx, st, logger, args)
	case "categories":
		return showCategories(ctx, st, logger)
	case "cat-add":
		return addCategory(ctx, st, logger, args)
	case "cat-rm":
		return removeCategory(ctx, st, logger, args)
	case "cat-reset":
		planner.NewCategories(ctx, st, logger).Reset(ctx)
		fmt.Println("categories reset to defaults")
		return nil
	case "clear":
		if out := st.ClearAll(ctx); !out.OK {
			return fmt.Errorf("clear data: %w", out.Err)
		}
		fmt.Println("all planner data cleared")
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func showDay(ctx context.Context, st *store.Store, logger *slog.Logger, day string) error {
	tasks := planner.NewTasks(ctx, st, logger)
	cats := planner.NewCategories(ctx, st, logger)
	list := view.DayView(tasks.All(), day)

	fmt.Printf("%s - %d task(s)\n", day, len(list))
	printTasks(list, cats.All())
	return nil
}

func showWeek(ctx context.Context, st *store.Store, logger *slog.Logger, day string) error {
	ref, err := time.Parse(dates.DayFormat, day)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", day, err)
	}
	tasks := planner.NewTasks(ctx, st, logger)
	cats := planner.NewCategories(ctx, st, logger)

	week := view.WeekView(tasks.All(), ref)
	summary := view.WeekSummary(week)
	start, end := dates.WeekRange(ref)
	fmt.Printf("week %s .. %s - %d task(s), %d done (%d%%)\n",
		dates.Format(start), dates.Format(end), summary.Total, summary.Completed, summary.CompletionRate)

	for _, d := range dates.WeekDays(ref) {
		key := dates.Format(d)
		fmt.Printf("\n%s %s\n", d.Format("Mon"), key)
		printTasks(week[key], cats.All())
	}
	return nil
}

func showStats(ctx context.Context, st *store.Store, logger *slog.Logger) error {
	tasks := planner.NewTasks(ctx, st, logger)
	cats := planner.NewCategories(ctx, st, logger)

	s := tasks.Stats()
	fmt.Printf("tasks: %d total, %d done (%.0f%%), %d today, %d this week\n",
		s.TotalTasks, s.CompletedTasks, s.CompletionRate, s.TasksToday, s.TasksThisWeek)

	all := tasks.All()
	byPriority := view.PriorityBreakdown(all)
	for _, p := range []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow} {
		t := byPriority[p]
		fmt.Printf("  %-6s %d/%d\n", p, t.Completed, t.Total)
	}
	for _, t := range view.CategoryBreakdown(all, cats.All()) {
		fmt.Printf("  %-10s %d/%d\n", t.Name, t.Completed, t.Total)
	}
	return nil
}

func addTask(ctx context.Context, st *store.Store, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	title := fs.String("title", "", "task title (required)")
	desc := fs.String("desc", "", "description")
	category := fs.String("category", "", "category id")
	priority := fs.String("priority", "medium", "low, medium, or high")
	slot := fs.String("time", "", "time slot (HH:MM)")
	date := fs.String("date", dates.Format(time.Now()), "day (YYYY-MM-DD)")
	fs.Parse(args)

	draft := model.TaskDraft{
		Title:       *title,
		Description: *desc,
		Category:    *category,
		Priority:    model.Priority(*priority),
		TimeSlot:    *slot,
		Date:        *date,
	}
	if msg := draft.Validate(); msg != "" {
		return fmt.Errorf("invalid task: %s", msg)
	}

	t := planner.NewTasks(ctx, st, logger).Add(ctx, draft)
	fmt.Printf("added task %s (%s)\n", t.Title, t.ID)
	return nil
}

func toggleTask(ctx context.Context, st *store.Store, logger *slog.Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: planner done <task-id>")
	}
	planner.NewTasks(ctx, st, logger).ToggleComplete(ctx, args[0])
	return nil
}

func removeTask(ctx context.Context, st *store.Store, logger *slog.Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: planner rm <task-id>")
	}
	planner.NewTasks(ctx, st, logger).Delete(ctx, args[0])
	return nil
}

func showGoals(ctx context.Context, st *store.Store, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("goals", flag.ExitOnError)
	goalType := fs.String("type", "", "filter by daily, weekly, or monthly")
	activeOnly := fs.Bool("active", false, "only goals whose deadline has not passed")
	completedOnly := fs.Bool("completed", false, "only goals that reached their target")
	fs.Parse(args)

	goals := planner.NewGoals(ctx, st, logger)
	var list []model.Goal
	switch {
	case *goalType != "":
		list = goals.ByType(model.GoalType(*goalType))
	case *activeOnly:
		list = goals.Active()
	case *completedOnly:
		list = goals.Completed()
	default:
		list = goals.All()
	}

	for _, g := range list {
		state := " "
		if g.Completed() {
			state = "x"
		}
		fmt.Printf("[%s] %-30s %3d/%-3d (%.0f%%) %s due %s  %s\n",
			state, g.Title, g.Progress, g.Target, goals.ProgressPercent(g.ID),
			g.Type, g.Deadline.Format(dates.DayFormat), g.ID)
	}
	return nil
}

func addGoal(ctx context.Context, st *store.Store, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("goal-add", flag.ExitOnError)
	title := fs.String("title", "", "goal title (required)")
	desc := fs.String("desc", "", "description")
	goalType := fs.String("type", "daily", "daily, weekly, or monthly")
	target := fs.Int("target", 0, "target count (required, positive)")
	deadline := fs.String("deadline", "", "deadline (YYYY-MM-DD, required)")
	fs.Parse(args)

	due, err := time.Parse(dates.DayFormat, *deadline)
	if err != nil {
		return fmt.Errorf("invalid deadline %q: %w", *deadline, err)
	}
	draft := model.GoalDraft{
		Title:       *title,
		Description: *desc,
		Type:        model.GoalType(*goalType),
		Target:      *target,
		Deadline:    due,
	}
	if msg := draft.Validate(); msg != "" {
		return fmt.Errorf("invalid goal: %s", msg)
	}

	g := planner.NewGoals(ctx, st, logger).Add(ctx, draft)
	fmt.Printf("added goal %s (%s)\n", g.Title, g.ID)
	return nil
}

func setGoalProgress(ctx context.Context, st *store.Store, logger *slog.Logger, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: planner goal-progress <goal-id> <value>")
	}
	var value int
	if _, err := fmt.Sscanf(args[1], "%d", &value); err != nil {
		return fmt.Errorf("invalid progress value %q", args[1])
	}
	planner.NewGoals(ctx, st, logger).UpdateProgress(ctx, args[0], value)
	return nil
}

func removeGoal(ctx context.Context, st *store.Store, logger *slog.Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: planner goal-rm <goal-id>")
	}
	planner.NewGoals(ctx, st, logger).Delete(ctx, args[0])
	return nil
}

func showCategories(ctx context.Context, st *store.Store, logger *slog.Logger) error {
	for _, c := range planner.NewCategories(ctx, st, logger).All() {
		fmt.Printf("%-10s %s  %s\n", c.Name, c.Color, c.ID)
	}
	return nil
}

func addCategory(ctx context.Context, st *store.Store, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("cat-add", flag.ExitOnError)
	name := fs.String("name", "", "category name (required)")
	color := fs.String("color", "", "hex color")
	icon := fs.String("icon", "", "icon name")
	fs.Parse(args)

	draft := model.CategoryDraft{Name: *name, Color: *color, Icon: *icon}
	if msg := draft.Validate(); msg != "" {
		return fmt.Errorf("invalid category: %s", msg)
	}
	c := planner.NewCategories(ctx, st, logger).Add(ctx, draft)
	fmt.Printf("added category %s (%s)\n", c.Name, c.ID)
	return nil
}

func removeCategory(ctx context.Context, st *store.Store, logger *slog.Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: planner cat-rm <category-id>")
	}
	planner.NewCategories(ctx, st, logger).Delete(ctx, args[0])
	return nil
}

func printTasks(tasks []model.Task, categories []model.Category) {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	for _, t := range tasks {
		check := " "
		if t.Completed {
			check = "x"
		}
		slot := "     "
		if t.TimeSlot != "" {
			slot = t.TimeSlot
		}
		name := names[t.Category]
		if name == "" && t.Category != "" {
			name = "(deleted)" // dangling category reference
		}
		fmt.Printf("  [%s] %s %-8s %-10s %s  %s\n", check, slot, t.Priority, name, t.Title, t.ID)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: planner <command> [flags]

  today                        show today's tasks
  day -date YYYY-MM-DD         show one day
  week [-date YYYY-MM-DD]      show a Monday-start week
  stats                        task statistics and breakdowns
  add -title ... -date ...     add a task
  done <task-id>               toggle completion
  rm <task-id>                 delete a task
  goals [-type|-active|-completed]
  goal-add -title ... -target N -deadline YYYY-MM-DD
  goal-progress <goal-id> <n>  set goal progress
  goal-rm <goal-id>            delete a goal
  categories | cat-add | cat-rm | cat-reset
  clear                        remove all planner data

environment: PLANNER_STORE (sqlite|memory|postgres|redis), PLANNER_DB_PATH,
DATABASE_URL, REDIS_URL`)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "planner.db"
	}
	return filepath.Join(home, ".planner", "planner.db")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
