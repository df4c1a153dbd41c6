// Command ordersctl prints the cached orders list or an order's status as a
// table. It reads the same environment as the API server.
//
//	ordersctl query -status "En transito" -carrier 9 -from 2024-05-01T00:00:00Z
//	ordersctl status AB12CD
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/rediscache"
	"logistics/internal/core/application/snapshot"
	"logistics/internal/core/application/usecases/queries"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one subcommand and returns the process exit code. Deferred
// cleanup runs before main exits.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 || (args[0] != "query" && args[0] != "status") {
		usage(stderr)
		return 2
	}

	configs, err := cmd.GetConfigs()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	logger := cmd.NewLogger(configs.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cache, err := rediscache.Connect(ctx, configs.Redis())
	if err != nil {
		fmt.Fprintf(stderr, "connect to cache: %v\n", err)
		return 1
	}
	defer cache.Close()
	snapshots := snapshot.NewStore(cache, logger)

	switch args[0] {
	case "query":
		err = runQuery(ctx, stdout, queries.NewQueryOrdersQueryHandler(snapshots), args[1:])
	case "status":
		db, openErr := postgres.Open(configs.Database())
		if openErr != nil {
			fmt.Fprintf(stderr, "connect to database: %v\n", openErr)
			return 1
		}
		handler := queries.NewGetOrderStatusQueryHandler(orderrepo.NewGormOrderRepository(db), snapshots)
		err = runStatus(ctx, stdout, handler, args[1:])
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: ordersctl query [-code C] [-status S] [-carrier ID] [-from RFC3339] [-to RFC3339]")
	fmt.Fprintln(w, "       ordersctl status CODE")
}

type ordersQuerier interface {
	Handle(ctx context.Context, query queries.QueryOrdersQuery) ([]snapshot.OrderView, error)
}

type statusReader interface {
	Handle(ctx context.Context, query queries.GetOrderStatusQuery) (queries.GetOrderStatusQueryResponse, error)
}

func runQuery(ctx context.Context, out io.Writer, handler ordersQuerier, args []string) error {
	filter, err := parseFilter(args)
	if err != nil {
		return err
	}
	query, err := queries.NewQueryOrdersQuery(filter)
	if err != nil {
		return err
	}
	views, err := handler.Handle(ctx, query)
	if err != nil {
		return err
	}
	return renderOrders(out, views)
}

func runStatus(ctx context.Context, out io.Writer, handler statusReader, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("status takes exactly one order code, got %d arguments", len(args))
	}
	query, err := queries.NewGetOrderStatusQuery(args[0])
	if err != nil {
		return err
	}
	resp, err := handler.Handle(ctx, query)
	if err != nil {
		return err
	}
	return renderStatus(out, resp)
}

func parseFilter(args []string) (queries.OrdersFilter, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	code := fs.String("code", "", "order code")
	status := fs.String("status", "", "order status")
	carrier := fs.Int64("carrier", 0, "assigned carrier id")
	from := fs.String("from", "", "delivered at or after (RFC3339)")
	to := fs.String("to", "", "delivered at or before (RFC3339)")
	if err := fs.Parse(args); err != nil {
		return queries.OrdersFilter{}, err
	}

	filter := queries.OrdersFilter{Code: *code, Status: *status}
	if *carrier != 0 {
		filter.AssignedCarrierID = carrier
	}
	var err error
	if filter.StartDate, err = parseTime("from", *from); err != nil {
		return queries.OrdersFilter{}, err
	}
	if filter.EndDate, err = parseTime("to", *to); err != nil {
		return queries.OrdersFilter{}, err
	}
	return filter, nil
}

func parseTime(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil //nolint:nilnil // absent filter
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("-%s: %w", name, err)
	}
	return &t, nil
}
