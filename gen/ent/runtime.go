// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/mholloway/ptr-tracker/db/ent/schema"
	"github.com/mholloway/ptr-tracker/gen/ent/download"
	"github.com/mholloway/ptr-tracker/gen/ent/filing"
	"github.com/mholloway/ptr-tracker/gen/ent/filinglist"
	"github.com/mholloway/ptr-tracker/gen/ent/ocrresult"
	"github.com/mholloway/ptr-tracker/gen/ent/parseissue"
	"github.com/mholloway/ptr-tracker/gen/ent/report"
	"github.com/mholloway/ptr-tracker/gen/ent/transaction"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	downloadFields := schema.Download{}.Fields()
	_ = downloadFields
	// downloadDescDocID is the schema descriptor for doc_id field.
	downloadDescDocID := downloadFields[0].Descriptor()
	// download.DocIDValidator is a validator for the "doc_id" field. It is called by the builders before save.
	download.DocIDValidator = downloadDescDocID.Validators[0].(func(string) error)
	// downloadDescStorageURI is the schema descriptor for storage_uri field.
	downloadDescStorageURI := downloadFields[2].Descriptor()
	// download.StorageURIValidator is a validator for the "storage_uri" field. It is called by the builders before save.
	download.StorageURIValidator = downloadDescStorageURI.Validators[0].(func(string) error)
	// downloadDescFetchedAt is the schema descriptor for fetched_at field.
	downloadDescFetchedAt := downloadFields[3].Descriptor()
	// download.DefaultFetchedAt holds the default value on creation for the fetched_at field.
	download.DefaultFetchedAt = downloadDescFetchedAt.Default.(func() time.Time)
	// downloadDescUpdatedAt is the schema descriptor for updated_at field.
	downloadDescUpdatedAt := downloadFields[4].Descriptor()
	// download.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	download.DefaultUpdatedAt = downloadDescUpdatedAt.Default.(func() time.Time)
	// download.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	download.UpdateDefaultUpdatedAt = downloadDescUpdatedAt.UpdateDefault.(func() time.Time)
	filingFields := schema.Filing{}.Fields()
	_ = filingFields
	// filingDescDocID is the schema descriptor for doc_id field.
	filingDescDocID := filingFields[0].Descriptor()
	// filing.DocIDValidator is a validator for the "doc_id" field. It is called by the builders before save.
	filing.DocIDValidator = filingDescDocID.Validators[0].(func(string) error)
	// filingDescLast is the schema descriptor for last field.
	filingDescLast := filingFields[2].Descriptor()
	// filing.LastValidator is a validator for the "last" field. It is called by the builders before save.
	filing.LastValidator = filingDescLast.Validators[0].(func(string) error)
	// filingDescFilingType is the schema descriptor for filing_type field.
	filingDescFilingType := filingFields[5].Descriptor()
	// filing.FilingTypeValidator is a validator for the "filing_type" field. It is called by the builders before save.
	filing.FilingTypeValidator = func() func(string) error {
		validators := filingDescFilingType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(filing_type string) error {
			for _, fn := range fns {
				if err := fn(filing_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// filingDescYear is the schema descriptor for year field.
	filingDescYear := filingFields[7].Descriptor()
	// filing.YearValidator is a validator for the "year" field. It is called by the builders before save.
	filing.YearValidator = filingDescYear.Validators[0].(func(int) error)
	// filingDescCreatedAt is the schema descriptor for created_at field.
	filingDescCreatedAt := filingFields[10].Descriptor()
	// filing.DefaultCreatedAt holds the default value on creation for the created_at field.
	filing.DefaultCreatedAt = filingDescCreatedAt.Default.(func() time.Time)
	filinglistFields := schema.FilingList{}.Fields()
	_ = filinglistFields
	// filinglistDescYear is the schema descriptor for year field.
	filinglistDescYear := filinglistFields[0].Descriptor()
	// filinglist.YearValidator is a validator for the "year" field. It is called by the builders before save.
	filinglist.YearValidator = filinglistDescYear.Validators[0].(func(int) error)
	// filinglistDescStorageURI is the schema descriptor for storage_uri field.
	filinglistDescStorageURI := filinglistFields[2].Descriptor()
	// filinglist.StorageURIValidator is a validator for the "storage_uri" field. It is called by the builders before save.
	filinglist.StorageURIValidator = filinglistDescStorageURI.Validators[0].(func(string) error)
	// filinglistDescParsed is the schema descriptor for parsed field.
	filinglistDescParsed := filinglistFields[3].Descriptor()
	// filinglist.DefaultParsed holds the default value on creation for the parsed field.
	filinglist.DefaultParsed = filinglistDescParsed.Default.(bool)
	// filinglistDescCreatedAt is the schema descriptor for created_at field.
	filinglistDescCreatedAt := filinglistFields[5].Descriptor()
	// filinglist.DefaultCreatedAt holds the default value on creation for the created_at field.
	filinglist.DefaultCreatedAt = filinglistDescCreatedAt.Default.(func() time.Time)
	// filinglistDescUpdatedAt is the schema descriptor for updated_at field.
	filinglistDescUpdatedAt := filinglistFields[6].Descriptor()
	// filinglist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	filinglist.DefaultUpdatedAt = filinglistDescUpdatedAt.Default.(func() time.Time)
	// filinglist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	filinglist.UpdateDefaultUpdatedAt = filinglistDescUpdatedAt.UpdateDefault.(func() time.Time)
	ocrresultFields := schema.OcrResult{}.Fields()
	_ = ocrresultFields
	// ocrresultDescDocID is the schema descriptor for doc_id field.
	ocrresultDescDocID := ocrresultFields[0].Descriptor()
	// ocrresult.DocIDValidator is a validator for the "doc_id" field. It is called by the builders before save.
	ocrresult.DocIDValidator = ocrresultDescDocID.Validators[0].(func(string) error)
	// ocrresultDescStorageURI is the schema descriptor for storage_uri field.
	ocrresultDescStorageURI := ocrresultFields[2].Descriptor()
	// ocrresult.StorageURIValidator is a validator for the "storage_uri" field. It is called by the builders before save.
	ocrresult.StorageURIValidator = ocrresultDescStorageURI.Validators[0].(func(string) error)
	// ocrresultDescCreatedAt is the schema descriptor for created_at field.
	ocrresultDescCreatedAt := ocrresultFields[3].Descriptor()
	// ocrresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	ocrresult.DefaultCreatedAt = ocrresultDescCreatedAt.Default.(func() time.Time)
	parseissueFields := schema.ParseIssue{}.Fields()
	_ = parseissueFields
	// parseissueDescDocID is the schema descriptor for doc_id field.
	parseissueDescDocID := parseissueFields[1].Descriptor()
	// parseissue.DocIDValidator is a validator for the "doc_id" field. It is called by the builders before save.
	parseissue.DocIDValidator = parseissueDescDocID.Validators[0].(func(string) error)
	// parseissueDescSeverity is the schema descriptor for severity field.
	parseissueDescSeverity := parseissueFields[2].Descriptor()
	// parseissue.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	parseissue.SeverityValidator = func() func(string) error {
		validators := parseissueDescSeverity.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(severity string) error {
			for _, fn := range fns {
				if err := fn(severity); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parseissueDescCategory is the schema descriptor for category field.
	parseissueDescCategory := parseissueFields[3].Descriptor()
	// parseissue.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	parseissue.CategoryValidator = func() func(string) error {
		validators := parseissueDescCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category string) error {
			for _, fn := range fns {
				if err := fn(category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parseissueDescMessage is the schema descriptor for message field.
	parseissueDescMessage := parseissueFields[4].Descriptor()
	// parseissue.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	parseissue.MessageValidator = parseissueDescMessage.Validators[0].(func(string) error)
	// parseissueDescCreatedAt is the schema descriptor for created_at field.
	parseissueDescCreatedAt := parseissueFields[7].Descriptor()
	// parseissue.DefaultCreatedAt holds the default value on creation for the created_at field.
	parseissue.DefaultCreatedAt = parseissueDescCreatedAt.Default.(func() time.Time)
	// parseissueDescID is the schema descriptor for id field.
	parseissueDescID := parseissueFields[0].Descriptor()
	// parseissue.DefaultID holds the default value on creation for the id field.
	parseissue.DefaultID = parseissueDescID.Default.(func() uuid.UUID)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescDocID is the schema descriptor for doc_id field.
	reportDescDocID := reportFields[1].Descriptor()
	// report.DocIDValidator is a validator for the "doc_id" field. It is called by the builders before save.
	report.DocIDValidator = reportDescDocID.Validators[0].(func(string) error)
	// reportDescFilerName is the schema descriptor for filer_name field.
	reportDescFilerName := reportFields[2].Descriptor()
	// report.FilerNameValidator is a validator for the "filer_name" field. It is called by the builders before save.
	report.FilerNameValidator = reportDescFilerName.Validators[0].(func(string) error)
	// reportDescFilerStatus is the schema descriptor for filer_status field.
	reportDescFilerStatus := reportFields[3].Descriptor()
	// report.FilerStatusValidator is a validator for the "filer_status" field. It is called by the builders before save.
	report.FilerStatusValidator = func() func(string) error {
		validators := reportDescFilerStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(filer_status string) error {
			for _, fn := range fns {
				if err := fn(filer_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescState is the schema descriptor for state field.
	reportDescState := reportFields[4].Descriptor()
	// report.StateValidator is a validator for the "state" field. It is called by the builders before save.
	report.StateValidator = func() func(string) error {
		validators := reportDescState.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(state string) error {
			for _, fn := range fns {
				if err := fn(state); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescDistrict is the schema descriptor for district field.
	reportDescDistrict := reportFields[5].Descriptor()
	// report.DistrictValidator is a validator for the "district" field. It is called by the builders before save.
	report.DistrictValidator = reportDescDistrict.Validators[0].(func(int) error)
	// reportDescSourceURL is the schema descriptor for source_url field.
	reportDescSourceURL := reportFields[6].Descriptor()
	// report.SourceURLValidator is a validator for the "source_url" field. It is called by the builders before save.
	report.SourceURLValidator = reportDescSourceURL.Validators[0].(func(string) error)
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[7].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportFields[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescDocID is the schema descriptor for doc_id field.
	transactionDescDocID := transactionFields[2].Descriptor()
	// transaction.DocIDValidator is a validator for the "doc_id" field. It is called by the builders before save.
	transaction.DocIDValidator = transactionDescDocID.Validators[0].(func(string) error)
	// transactionDescPosition is the schema descriptor for position field.
	transactionDescPosition := transactionFields[3].Descriptor()
	// transaction.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	transaction.PositionValidator = transactionDescPosition.Validators[0].(func(int) error)
	// transactionDescOwner is the schema descriptor for owner field.
	transactionDescOwner := transactionFields[4].Descriptor()
	// transaction.OwnerValidator is a validator for the "owner" field. It is called by the builders before save.
	transaction.OwnerValidator = transactionDescOwner.Validators[0].(func(string) error)
	// transactionDescAssetName is the schema descriptor for asset_name field.
	transactionDescAssetName := transactionFields[5].Descriptor()
	// transaction.AssetNameValidator is a validator for the "asset_name" field. It is called by the builders before save.
	transaction.AssetNameValidator = transactionDescAssetName.Validators[0].(func(string) error)
	// transactionDescFilingStatus is the schema descriptor for filing_status field.
	transactionDescFilingStatus := transactionFields[7].Descriptor()
	// transaction.FilingStatusValidator is a validator for the "filing_status" field. It is called by the builders before save.
	transaction.FilingStatusValidator = func() func(string) error {
		validators := transactionDescFilingStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(filing_status string) error {
			for _, fn := range fns {
				if err := fn(filing_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transactionDescTradeType is the schema descriptor for trade_type field.
	transactionDescTradeType := transactionFields[8].Descriptor()
	// transaction.TradeTypeValidator is a validator for the "trade_type" field. It is called by the builders before save.
	transaction.TradeTypeValidator = func() func(string) error {
		validators := transactionDescTradeType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(trade_type string) error {
			for _, fn := range fns {
				if err := fn(trade_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transactionDescAmountRange is the schema descriptor for amount_range field.
	transactionDescAmountRange := transactionFields[9].Descriptor()
	// transaction.AmountRangeValidator is a validator for the "amount_range" field. It is called by the builders before save.
	transaction.AmountRangeValidator = func() func(string) error {
		validators := transactionDescAmountRange.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(amount_range string) error {
			for _, fn := range fns {
				if err := fn(amount_range); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transactionDescSourceURL is the schema descriptor for source_url field.
	transactionDescSourceURL := transactionFields[12].Descriptor()
	// transaction.SourceURLValidator is a validator for the "source_url" field. It is called by the builders before save.
	transaction.SourceURLValidator = transactionDescSourceURL.Validators[0].(func(string) error)
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[13].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionFields[0].Descriptor()
	// transaction.DefaultID holds the default value on creation for the id field.
	transaction.DefaultID = transactionDescID.Default.(func() uuid.UUID)
}
