// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DownloadsColumns holds the columns for the "downloads" table.
	DownloadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "doc_id", Type: field.TypeString, Unique: true},
		{Name: "etag", Type: field.TypeString, Nullable: true},
		{Name: "storage_uri", Type: field.TypeString},
		{Name: "fetched_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DownloadsTable holds the schema information for the "downloads" table.
	DownloadsTable = &schema.Table{
		Name:       "downloads",
		Columns:    DownloadsColumns,
		PrimaryKey: []*schema.Column{DownloadsColumns[0]},
	}
	// FilingsColumns holds the columns for the "filings" table.
	FilingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "doc_id", Type: field.TypeString, Unique: true},
		{Name: "prefix", Type: field.TypeString, Nullable: true},
		{Name: "last", Type: field.TypeString},
		{Name: "first", Type: field.TypeString, Nullable: true},
		{Name: "suffix", Type: field.TypeString, Nullable: true},
		{Name: "filing_type", Type: field.TypeString},
		{Name: "state_dst", Type: field.TypeString, Nullable: true},
		{Name: "year", Type: field.TypeInt},
		{Name: "filing_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "raw_row", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FilingsTable holds the schema information for the "filings" table.
	FilingsTable = &schema.Table{
		Name:       "filings",
		Columns:    FilingsColumns,
		PrimaryKey: []*schema.Column{FilingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "filing_year_filing_type",
				Unique:  false,
				Columns: []*schema.Column{FilingsColumns[8], FilingsColumns[6]},
			},
			{
				Name:    "filing_last_first",
				Unique:  false,
				Columns: []*schema.Column{FilingsColumns[3], FilingsColumns[4]},
			},
		},
	}
	// FilingListsColumns holds the columns for the "filing_lists" table.
	FilingListsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "year", Type: field.TypeInt, Unique: true},
		{Name: "etag", Type: field.TypeString, Nullable: true},
		{Name: "storage_uri", Type: field.TypeString},
		{Name: "parsed", Type: field.TypeBool, Default: false},
		{Name: "parsed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FilingListsTable holds the schema information for the "filing_lists" table.
	FilingListsTable = &schema.Table{
		Name:       "filing_lists",
		Columns:    FilingListsColumns,
		PrimaryKey: []*schema.Column{FilingListsColumns[0]},
	}
	// OcrResultsColumns holds the columns for the "ocr_results" table.
	OcrResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "doc_id", Type: field.TypeString},
		{Name: "storage_uri", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "download_id", Type: field.TypeInt},
	}
	// OcrResultsTable holds the schema information for the "ocr_results" table.
	OcrResultsTable = &schema.Table{
		Name:       "ocr_results",
		Columns:    OcrResultsColumns,
		PrimaryKey: []*schema.Column{OcrResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ocr_results_downloads_ocr_results",
				Columns:    []*schema.Column{OcrResultsColumns[4]},
				RefColumns: []*schema.Column{DownloadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ocrresult_doc_id",
				Unique:  false,
				Columns: []*schema.Column{OcrResultsColumns[1]},
			},
		},
	}
	// ParseIssuesColumns holds the columns for the "parse_issues" table.
	ParseIssuesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "doc_id", Type: field.TypeString},
		{Name: "severity", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "details", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ParseIssuesTable holds the schema information for the "parse_issues" table.
	ParseIssuesTable = &schema.Table{
		Name:       "parse_issues",
		Columns:    ParseIssuesColumns,
		PrimaryKey: []*schema.Column{ParseIssuesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "parseissue_doc_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ParseIssuesColumns[1], ParseIssuesColumns[7]},
			},
			{
				Name:    "parseissue_severity",
				Unique:  false,
				Columns: []*schema.Column{ParseIssuesColumns[2]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "doc_id", Type: field.TypeString, Unique: true},
		{Name: "filer_name", Type: field.TypeString},
		{Name: "filer_status", Type: field.TypeString},
		{Name: "state", Type: field.TypeString, Size: 2, SchemaType: map[string]string{"postgres": "char(2)"}},
		{Name: "district", Type: field.TypeInt},
		{Name: "source_url", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "doc_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "owner", Type: field.TypeString, Nullable: true},
		{Name: "asset_name", Type: field.TypeString},
		{Name: "asset_type", Type: field.TypeString, Nullable: true},
		{Name: "filing_status", Type: field.TypeString},
		{Name: "trade_type", Type: field.TypeString},
		{Name: "amount_range", Type: field.TypeString},
		{Name: "trade_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "notification_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "source_url", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_reports_transactions",
				Columns:    []*schema.Column{TransactionsColumns[13]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_doc_id",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[1]},
			},
			{
				Name:    "transaction_trade_date",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[9]},
			},
			{
				Name:    "transaction_asset_name",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DownloadsTable,
		FilingsTable,
		FilingListsTable,
		OcrResultsTable,
		ParseIssuesTable,
		ReportsTable,
		TransactionsTable,
	}
)

func init() {
	DownloadsTable.Annotation = &entsql.Annotation{
		Table: "downloads",
	}
	FilingsTable.Annotation = &entsql.Annotation{
		Table: "filings",
	}
	FilingListsTable.Annotation = &entsql.Annotation{
		Table: "filing_lists",
	}
	OcrResultsTable.ForeignKeys[0].RefTable = DownloadsTable
	OcrResultsTable.Annotation = &entsql.Annotation{
		Table: "ocr_results",
	}
	ParseIssuesTable.Annotation = &entsql.Annotation{
		Table: "parse_issues",
	}
	ReportsTable.Annotation = &entsql.Annotation{
		Table: "reports",
	}
	TransactionsTable.ForeignKeys[0].RefTable = ReportsTable
	TransactionsTable.Annotation = &entsql.Annotation{
		Table: "transactions",
	}
}
