package repository

import (
	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/gen/ent"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

// Conversions from generated ent records to entity DTOs. Repositories never
// hand generated types to callers.

func toFilingList(rec *ent.FilingList) *entity.FilingList {
	return &entity.FilingList{
		ID:         int64(rec.ID),
		Year:       rec.Year,
		ETag:       rec.Etag,
		StorageURI: rec.StorageURI,
		Parsed:     rec.Parsed,
		ParsedAt:   rec.ParsedAt,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  &rec.UpdatedAt,
	}
}

func toFiling(rec *ent.Filing) *entity.Filing {
	return &entity.Filing{
		ID:         int64(rec.ID),
		DocID:      rec.DocID,
		Prefix:     rec.Prefix,
		Last:       rec.Last,
		First:      rec.First,
		Suffix:     rec.Suffix,
		FilingType: rec.FilingType,
		StateDst:   rec.StateDst,
		Year:       rec.Year,
		FilingDate: rec.FilingDate,
		RawRow:     rec.RawRow,
		CreatedAt:  rec.CreatedAt,
	}
}

func toDownload(rec *ent.Download) *entity.Download {
	return &entity.Download{
		ID:         int64(rec.ID),
		DocID:      rec.DocID,
		ETag:       rec.Etag,
		StorageURI: rec.StorageURI,
		FetchedAt:  rec.FetchedAt,
		UpdatedAt:  &rec.UpdatedAt,
	}
}

func toOcrResult(rec *ent.OcrResult) *entity.OcrResult {
	return &entity.OcrResult{
		ID:         int64(rec.ID),
		DocID:      rec.DocID,
		DownloadID: int64(rec.DownloadID),
		StorageURI: rec.StorageURI,
		CreatedAt:  rec.CreatedAt,
	}
}

func toReport(rec *ent.Report) *entity.Report {
	return &entity.Report{
		ID:    rec.ID,
		DocID: rec.DocID,
		Filer: entity.FilerInfo{
			FullName: rec.FilerName,
			Status:   constants.FilerStatus(rec.FilerStatus),
			State:    rec.State,
			District: rec.District,
		},
		SourceURL: rec.SourceURL,
		CreatedAt: rec.CreatedAt,
	}
}

func toTransaction(rec *ent.Transaction) *entity.Transaction {
	tx := &entity.Transaction{
		ID:               rec.ID,
		ReportID:         rec.ReportID,
		DocID:            rec.DocID,
		Position:         rec.Position,
		AssetName:        rec.AssetName,
		AssetType:        rec.AssetType,
		FilingStatus:     constants.FilingStatus(rec.FilingStatus),
		TradeType:        constants.TradeType(rec.TradeType),
		AmountRange:      constants.AmountRange(rec.AmountRange),
		TradeDate:        rec.TradeDate,
		NotificationDate: rec.NotificationDate,
		SourceURL:        rec.SourceURL,
		CreatedAt:        rec.CreatedAt,
	}
	if rec.Owner != nil {
		owner := constants.Ownership(*rec.Owner)
		tx.Owner = &owner
	}
	return tx
}

func toParseIssue(rec *ent.ParseIssue) *entity.ParseIssue {
	return &entity.ParseIssue{
		ID:        rec.ID,
		DocID:     rec.DocID,
		Severity:  constants.IssueSeverity(rec.Severity),
		Category:  constants.IssueCategory(rec.Category),
		Message:   rec.Message,
		Details:   rec.Details,
		Location:  rec.Location,
		CreatedAt: rec.CreatedAt,
	}
}
