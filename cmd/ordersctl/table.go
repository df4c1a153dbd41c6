package main

import (
	"io"
	"strconv"
	"time"

	"logistics/internal/core/application/snapshot"
	"logistics/internal/core/application/usecases/queries"

	"github.com/olekukonko/tablewriter"
)

func renderOrders(out io.Writer, views []snapshot.OrderView) error {
	table := tablewriter.NewWriter(out)
	table.Header("ID", "Code", "Status", "Origin", "Destination", "Route", "Estimated", "Delivered")

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			strconv.FormatInt(v.ID, 10),
			v.Code,
			v.Status,
			strconv.FormatInt(v.OriginCityID, 10),
			strconv.FormatInt(v.DestinationCityID, 10),
			optionalID(v.RouteID),
			optionalTime(v.EstimatedDeliveryTime),
			optionalTime(v.DeliveredAt),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func renderStatus(out io.Writer, resp queries.GetOrderStatusQueryResponse) error {
	source := "store"
	if resp.Cached {
		source = "cache"
	}

	table := tablewriter.NewWriter(out)
	table.Header("Code", "Status", "Source")
	if err := table.Append([]string{resp.Code, resp.Status, source}); err != nil {
		return err
	}
	return table.Render()
}

func optionalID(id *int64) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatInt(*id, 10)
}

func optionalTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
