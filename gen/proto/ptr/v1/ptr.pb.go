// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: ptr/v1/ptr.proto

package ptrv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ProcessYearRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Year          int32                  `protobuf:"varint,1,opt,name=year,proto3" json:"year,omitempty"`
	Force         bool                   `protobuf:"varint,2,opt,name=force,proto3" json:"force,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessYearRequest) Reset() {
	*x = ProcessYearRequest{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessYearRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessYearRequest) ProtoMessage() {}

func (x *ProcessYearRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessYearRequest.ProtoReflect.Descriptor instead.
func (*ProcessYearRequest) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{0}
}

func (x *ProcessYearRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *ProcessYearRequest) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

type ProcessYearResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Attempted     int32                  `protobuf:"varint,1,opt,name=attempted,proto3" json:"attempted,omitempty"`
	Unchanged     int32                  `protobuf:"varint,2,opt,name=unchanged,proto3" json:"unchanged,omitempty"`
	Downloaded    int32                  `protobuf:"varint,3,opt,name=downloaded,proto3" json:"downloaded,omitempty"`
	Parsed        int32                  `protobuf:"varint,4,opt,name=parsed,proto3" json:"parsed,omitempty"`
	Transactions  int32                  `protobuf:"varint,5,opt,name=transactions,proto3" json:"transactions,omitempty"`
	Failures      int32                  `protobuf:"varint,6,opt,name=failures,proto3" json:"failures,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessYearResponse) Reset() {
	*x = ProcessYearResponse{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessYearResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessYearResponse) ProtoMessage() {}

func (x *ProcessYearResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessYearResponse.ProtoReflect.Descriptor instead.
func (*ProcessYearResponse) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessYearResponse) GetAttempted() int32 {
	if x != nil {
		return x.Attempted
	}
	return 0
}

func (x *ProcessYearResponse) GetUnchanged() int32 {
	if x != nil {
		return x.Unchanged
	}
	return 0
}

func (x *ProcessYearResponse) GetDownloaded() int32 {
	if x != nil {
		return x.Downloaded
	}
	return 0
}

func (x *ProcessYearResponse) GetParsed() int32 {
	if x != nil {
		return x.Parsed
	}
	return 0
}

func (x *ProcessYearResponse) GetTransactions() int32 {
	if x != nil {
		return x.Transactions
	}
	return 0
}

func (x *ProcessYearResponse) GetFailures() int32 {
	if x != nil {
		return x.Failures
	}
	return 0
}

type ProcessFilingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocId         string                 `protobuf:"bytes,1,opt,name=doc_id,json=docId,proto3" json:"doc_id,omitempty"`
	Force         bool                   `protobuf:"varint,2,opt,name=force,proto3" json:"force,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessFilingRequest) Reset() {
	*x = ProcessFilingRequest{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessFilingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessFilingRequest) ProtoMessage() {}

func (x *ProcessFilingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessFilingRequest.ProtoReflect.Descriptor instead.
func (*ProcessFilingRequest) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessFilingRequest) GetDocId() string {
	if x != nil {
		return x.DocId
	}
	return ""
}

func (x *ProcessFilingRequest) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

type ProcessFilingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fetched       bool                   `protobuf:"varint,1,opt,name=fetched,proto3" json:"fetched,omitempty"`
	Ocrd          bool                   `protobuf:"varint,2,opt,name=ocrd,proto3" json:"ocrd,omitempty"`
	Parsed        bool                   `protobuf:"varint,3,opt,name=parsed,proto3" json:"parsed,omitempty"`
	Unchanged     bool                   `protobuf:"varint,4,opt,name=unchanged,proto3" json:"unchanged,omitempty"`
	Transactions  int32                  `protobuf:"varint,5,opt,name=transactions,proto3" json:"transactions,omitempty"`
	Warnings      int32                  `protobuf:"varint,6,opt,name=warnings,proto3" json:"warnings,omitempty"`
	Errors        int32                  `protobuf:"varint,7,opt,name=errors,proto3" json:"errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessFilingResponse) Reset() {
	*x = ProcessFilingResponse{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessFilingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessFilingResponse) ProtoMessage() {}

func (x *ProcessFilingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessFilingResponse.ProtoReflect.Descriptor instead.
func (*ProcessFilingResponse) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessFilingResponse) GetFetched() bool {
	if x != nil {
		return x.Fetched
	}
	return false
}

func (x *ProcessFilingResponse) GetOcrd() bool {
	if x != nil {
		return x.Ocrd
	}
	return false
}

func (x *ProcessFilingResponse) GetParsed() bool {
	if x != nil {
		return x.Parsed
	}
	return false
}

func (x *ProcessFilingResponse) GetUnchanged() bool {
	if x != nil {
		return x.Unchanged
	}
	return false
}

func (x *ProcessFilingResponse) GetTransactions() int32 {
	if x != nil {
		return x.Transactions
	}
	return 0
}

func (x *ProcessFilingResponse) GetWarnings() int32 {
	if x != nil {
		return x.Warnings
	}
	return 0
}

func (x *ProcessFilingResponse) GetErrors() int32 {
	if x != nil {
		return x.Errors
	}
	return 0
}

type Report struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocId         string                 `protobuf:"bytes,2,opt,name=doc_id,json=docId,proto3" json:"doc_id,omitempty"`
	FilerName     string                 `protobuf:"bytes,3,opt,name=filer_name,json=filerName,proto3" json:"filer_name,omitempty"`
	FilerStatus   string                 `protobuf:"bytes,4,opt,name=filer_status,json=filerStatus,proto3" json:"filer_status,omitempty"`
	State         string                 `protobuf:"bytes,5,opt,name=state,proto3" json:"state,omitempty"`
	District      int32                  `protobuf:"varint,6,opt,name=district,proto3" json:"district,omitempty"`
	SourceUrl     string                 `protobuf:"bytes,7,opt,name=source_url,json=sourceUrl,proto3" json:"source_url,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Report) Reset() {
	*x = Report{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Report) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Report) ProtoMessage() {}

func (x *Report) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Report.ProtoReflect.Descriptor instead.
func (*Report) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{4}
}

func (x *Report) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Report) GetDocId() string {
	if x != nil {
		return x.DocId
	}
	return ""
}

func (x *Report) GetFilerName() string {
	if x != nil {
		return x.FilerName
	}
	return ""
}

func (x *Report) GetFilerStatus() string {
	if x != nil {
		return x.FilerStatus
	}
	return ""
}

func (x *Report) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Report) GetDistrict() int32 {
	if x != nil {
		return x.District
	}
	return 0
}

func (x *Report) GetSourceUrl() string {
	if x != nil {
		return x.SourceUrl
	}
	return ""
}

func (x *Report) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Transaction struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocId            string                 `protobuf:"bytes,2,opt,name=doc_id,json=docId,proto3" json:"doc_id,omitempty"`
	Owner            string                 `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty"`
	AssetName        string                 `protobuf:"bytes,4,opt,name=asset_name,json=assetName,proto3" json:"asset_name,omitempty"`
	AssetType        string                 `protobuf:"bytes,5,opt,name=asset_type,json=assetType,proto3" json:"asset_type,omitempty"`
	FilingStatus     string                 `protobuf:"bytes,6,opt,name=filing_status,json=filingStatus,proto3" json:"filing_status,omitempty"`
	TradeType        string                 `protobuf:"bytes,7,opt,name=trade_type,json=tradeType,proto3" json:"trade_type,omitempty"`
	AmountRange      string                 `protobuf:"bytes,8,opt,name=amount_range,json=amountRange,proto3" json:"amount_range,omitempty"`
	TradeDate        string                 `protobuf:"bytes,9,opt,name=trade_date,json=tradeDate,proto3" json:"trade_date,omitempty"`                       // YYYY-MM-DD
	NotificationDate string                 `protobuf:"bytes,10,opt,name=notification_date,json=notificationDate,proto3" json:"notification_date,omitempty"` // YYYY-MM-DD, may be empty
	SourceUrl        string                 `protobuf:"bytes,11,opt,name=source_url,json=sourceUrl,proto3" json:"source_url,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Transaction) Reset() {
	*x = Transaction{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transaction) ProtoMessage() {}

func (x *Transaction) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Transaction.ProtoReflect.Descriptor instead.
func (*Transaction) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{5}
}

func (x *Transaction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Transaction) GetDocId() string {
	if x != nil {
		return x.DocId
	}
	return ""
}

func (x *Transaction) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *Transaction) GetAssetName() string {
	if x != nil {
		return x.AssetName
	}
	return ""
}

func (x *Transaction) GetAssetType() string {
	if x != nil {
		return x.AssetType
	}
	return ""
}

func (x *Transaction) GetFilingStatus() string {
	if x != nil {
		return x.FilingStatus
	}
	return ""
}

func (x *Transaction) GetTradeType() string {
	if x != nil {
		return x.TradeType
	}
	return ""
}

func (x *Transaction) GetAmountRange() string {
	if x != nil {
		return x.AmountRange
	}
	return ""
}

func (x *Transaction) GetTradeDate() string {
	if x != nil {
		return x.TradeDate
	}
	return ""
}

func (x *Transaction) GetNotificationDate() string {
	if x != nil {
		return x.NotificationDate
	}
	return ""
}

func (x *Transaction) GetSourceUrl() string {
	if x != nil {
		return x.SourceUrl
	}
	return ""
}

type ParseIssue struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Severity      string                 `protobuf:"bytes,1,opt,name=severity,proto3" json:"severity,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Details       string                 `protobuf:"bytes,4,opt,name=details,proto3" json:"details,omitempty"`
	Location      string                 `protobuf:"bytes,5,opt,name=location,proto3" json:"location,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseIssue) Reset() {
	*x = ParseIssue{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseIssue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseIssue) ProtoMessage() {}

func (x *ParseIssue) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseIssue.ProtoReflect.Descriptor instead.
func (*ParseIssue) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{6}
}

func (x *ParseIssue) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *ParseIssue) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ParseIssue) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ParseIssue) GetDetails() string {
	if x != nil {
		return x.Details
	}
	return ""
}

func (x *ParseIssue) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *ParseIssue) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GetReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocId         string                 `protobuf:"bytes,1,opt,name=doc_id,json=docId,proto3" json:"doc_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReportRequest) Reset() {
	*x = GetReportRequest{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportRequest) ProtoMessage() {}

func (x *GetReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReportRequest.ProtoReflect.Descriptor instead.
func (*GetReportRequest) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{7}
}

func (x *GetReportRequest) GetDocId() string {
	if x != nil {
		return x.DocId
	}
	return ""
}

type GetReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Report        *Report                `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	Transactions  []*Transaction         `protobuf:"bytes,2,rep,name=transactions,proto3" json:"transactions,omitempty"`
	Issues        []*ParseIssue          `protobuf:"bytes,3,rep,name=issues,proto3" json:"issues,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReportResponse) Reset() {
	*x = GetReportResponse{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportResponse) ProtoMessage() {}

func (x *GetReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReportResponse.ProtoReflect.Descriptor instead.
func (*GetReportResponse) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{8}
}

func (x *GetReportResponse) GetReport() *Report {
	if x != nil {
		return x.Report
	}
	return nil
}

func (x *GetReportResponse) GetTransactions() []*Transaction {
	if x != nil {
		return x.Transactions
	}
	return nil
}

func (x *GetReportResponse) GetIssues() []*ParseIssue {
	if x != nil {
		return x.Issues
	}
	return nil
}

type ListTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocId         string                 `protobuf:"bytes,1,opt,name=doc_id,json=docId,proto3" json:"doc_id,omitempty"`
	TradeType     string                 `protobuf:"bytes,2,opt,name=trade_type,json=tradeType,proto3" json:"trade_type,omitempty"`
	AssetName     string                 `protobuf:"bytes,3,opt,name=asset_name,json=assetName,proto3" json:"asset_name,omitempty"`
	FromDate      string                 `protobuf:"bytes,4,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,5,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	Limit         int32                  `protobuf:"varint,6,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsRequest) Reset() {
	*x = ListTransactionsRequest{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsRequest) ProtoMessage() {}

func (x *ListTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ListTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{9}
}

func (x *ListTransactionsRequest) GetDocId() string {
	if x != nil {
		return x.DocId
	}
	return ""
}

func (x *ListTransactionsRequest) GetTradeType() string {
	if x != nil {
		return x.TradeType
	}
	return ""
}

func (x *ListTransactionsRequest) GetAssetName() string {
	if x != nil {
		return x.AssetName
	}
	return ""
}

func (x *ListTransactionsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListTransactionsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListTransactionsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transactions  []*Transaction         `protobuf:"bytes,1,rep,name=transactions,proto3" json:"transactions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsResponse) Reset() {
	*x = ListTransactionsResponse{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsResponse) ProtoMessage() {}

func (x *ListTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ListTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{10}
}

func (x *ListTransactionsResponse) GetTransactions() []*Transaction {
	if x != nil {
		return x.Transactions
	}
	return nil
}

type GetStatsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Scope counts to one disclosure year; 0 covers everything.
	Year          int32 `protobuf:"varint,1,opt,name=year,proto3" json:"year,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatsRequest) Reset() {
	*x = GetStatsRequest{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatsRequest) ProtoMessage() {}

func (x *GetStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatsRequest.ProtoReflect.Descriptor instead.
func (*GetStatsRequest) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{11}
}

func (x *GetStatsRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type GetStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filings       int32                  `protobuf:"varint,1,opt,name=filings,proto3" json:"filings,omitempty"`
	PtrFilings    int32                  `protobuf:"varint,2,opt,name=ptr_filings,json=ptrFilings,proto3" json:"ptr_filings,omitempty"`
	Downloads     int32                  `protobuf:"varint,3,opt,name=downloads,proto3" json:"downloads,omitempty"`
	OcrResults    int32                  `protobuf:"varint,4,opt,name=ocr_results,json=ocrResults,proto3" json:"ocr_results,omitempty"`
	Reports       int32                  `protobuf:"varint,5,opt,name=reports,proto3" json:"reports,omitempty"`
	Transactions  int32                  `protobuf:"varint,6,opt,name=transactions,proto3" json:"transactions,omitempty"`
	Warnings      int32                  `protobuf:"varint,7,opt,name=warnings,proto3" json:"warnings,omitempty"`
	Errors        int32                  `protobuf:"varint,8,opt,name=errors,proto3" json:"errors,omitempty"`
	Year          int32                  `protobuf:"varint,9,opt,name=year,proto3" json:"year,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatsResponse) Reset() {
	*x = GetStatsResponse{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatsResponse) ProtoMessage() {}

func (x *GetStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatsResponse.ProtoReflect.Descriptor instead.
func (*GetStatsResponse) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{12}
}

func (x *GetStatsResponse) GetFilings() int32 {
	if x != nil {
		return x.Filings
	}
	return 0
}

func (x *GetStatsResponse) GetPtrFilings() int32 {
	if x != nil {
		return x.PtrFilings
	}
	return 0
}

func (x *GetStatsResponse) GetDownloads() int32 {
	if x != nil {
		return x.Downloads
	}
	return 0
}

func (x *GetStatsResponse) GetOcrResults() int32 {
	if x != nil {
		return x.OcrResults
	}
	return 0
}

func (x *GetStatsResponse) GetReports() int32 {
	if x != nil {
		return x.Reports
	}
	return 0
}

func (x *GetStatsResponse) GetTransactions() int32 {
	if x != nil {
		return x.Transactions
	}
	return 0
}

func (x *GetStatsResponse) GetWarnings() int32 {
	if x != nil {
		return x.Warnings
	}
	return 0
}

func (x *GetStatsResponse) GetErrors() int32 {
	if x != nil {
		return x.Errors
	}
	return 0
}

func (x *GetStatsResponse) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type ExportTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsRequest) Reset() {
	*x = ExportTransactionsRequest{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsRequest) ProtoMessage() {}

func (x *ExportTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ExportTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{13}
}

func (x *ExportTransactionsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportTransactionsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsResponse) Reset() {
	*x = ExportTransactionsResponse{}
	mi := &file_ptr_v1_ptr_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsResponse) ProtoMessage() {}

func (x *ExportTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ptr_v1_ptr_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ExportTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_ptr_v1_ptr_proto_rawDescGZIP(), []int{14}
}

func (x *ExportTransactionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_ptr_v1_ptr_proto protoreflect.FileDescriptor

const file_ptr_v1_ptr_proto_rawDesc = "" +
	"\n" +
	"\x10ptr/v1/ptr.proto\x12\x06ptr.v1\">\n" +
	"\x12ProcessYearRequest\x12\x12\n" +
	"\x04year\x18\x01 \x01(\x05R\x04year\x12\x14\n" +
	"\x05force\x18\x02 \x01(\bR\x05force\"\xc9\x01\n" +
	"\x13ProcessYearResponse\x12\x1c\n" +
	"\tattempted\x18\x01 \x01(\x05R\tattempted\x12\x1c\n" +
	"\tunchanged\x18\x02 \x01(\x05R\tunchanged\x12\x1e\n" +
	"\n" +
	"downloaded\x18\x03 \x01(\x05R\n" +
	"downloaded\x12\x16\n" +
	"\x06parsed\x18\x04 \x01(\x05R\x06parsed\x12\"\n" +
	"\ftransactions\x18\x05 \x01(\x05R\ftransactions\x12\x1a\n" +
	"\bfailures\x18\x06 \x01(\x05R\bfailures\"C\n" +
	"\x14ProcessFilingRequest\x12\x15\n" +
	"\x06doc_id\x18\x01 \x01(\tR\x05docId\x12\x14\n" +
	"\x05force\x18\x02 \x01(\bR\x05force\"\xd3\x01\n" +
	"\x15ProcessFilingResponse\x12\x18\n" +
	"\afetched\x18\x01 \x01(\bR\afetched\x12\x12\n" +
	"\x04ocrd\x18\x02 \x01(\bR\x04ocrd\x12\x16\n" +
	"\x06parsed\x18\x03 \x01(\bR\x06parsed\x12\x1c\n" +
	"\tunchanged\x18\x04 \x01(\bR\tunchanged\x12\"\n" +
	"\ftransactions\x18\x05 \x01(\x05R\ftransactions\x12\x1a\n" +
	"\bwarnings\x18\x06 \x01(\x05R\bwarnings\x12\x16\n" +
	"\x06errors\x18\a \x01(\x05R\x06errors\"\xe1\x01\n" +
	"\x06Report\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06doc_id\x18\x02 \x01(\tR\x05docId\x12\x1d\n" +
	"\n" +
	"filer_name\x18\x03 \x01(\tR\tfilerName\x12!\n" +
	"\ffiler_status\x18\x04 \x01(\tR\vfilerStatus\x12\x14\n" +
	"\x05state\x18\x05 \x01(\tR\x05state\x12\x1a\n" +
	"\bdistrict\x18\x06 \x01(\x05R\bdistrict\x12\x1d\n" +
	"\n" +
	"source_url\x18\a \x01(\tR\tsourceUrl\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"\xda\x02\n" +
	"\vTransaction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06doc_id\x18\x02 \x01(\tR\x05docId\x12\x14\n" +
	"\x05owner\x18\x03 \x01(\tR\x05owner\x12\x1d\n" +
	"\n" +
	"asset_name\x18\x04 \x01(\tR\tassetName\x12\x1d\n" +
	"\n" +
	"asset_type\x18\x05 \x01(\tR\tassetType\x12#\n" +
	"\rfiling_status\x18\x06 \x01(\tR\ffilingStatus\x12\x1d\n" +
	"\n" +
	"trade_type\x18\a \x01(\tR\ttradeType\x12!\n" +
	"\famount_range\x18\b \x01(\tR\vamountRange\x12\x1d\n" +
	"\n" +
	"trade_date\x18\t \x01(\tR\ttradeDate\x12+\n" +
	"\x11notification_date\x18\n" +
	" \x01(\tR\x10notificationDate\x12\x1d\n" +
	"\n" +
	"source_url\x18\v \x01(\tR\tsourceUrl\"\xb3\x01\n" +
	"\n" +
	"ParseIssue\x12\x1a\n" +
	"\bseverity\x18\x01 \x01(\tR\bseverity\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\x12\x18\n" +
	"\adetails\x18\x04 \x01(\tR\adetails\x12\x1a\n" +
	"\blocation\x18\x05 \x01(\tR\blocation\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\")\n" +
	"\x10GetReportRequest\x12\x15\n" +
	"\x06doc_id\x18\x01 \x01(\tR\x05docId\"\xa0\x01\n" +
	"\x11GetReportResponse\x12&\n" +
	"\x06report\x18\x01 \x01(\v2\x0e.ptr.v1.ReportR\x06report\x127\n" +
	"\ftransactions\x18\x02 \x03(\v2\x13.ptr.v1.TransactionR\ftransactions\x12*\n" +
	"\x06issues\x18\x03 \x03(\v2\x12.ptr.v1.ParseIssueR\x06issues\"\xba\x01\n" +
	"\x17ListTransactionsRequest\x12\x15\n" +
	"\x06doc_id\x18\x01 \x01(\tR\x05docId\x12\x1d\n" +
	"\n" +
	"trade_type\x18\x02 \x01(\tR\ttradeType\x12\x1d\n" +
	"\n" +
	"asset_name\x18\x03 \x01(\tR\tassetName\x12\x1b\n" +
	"\tfrom_date\x18\x04 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x05 \x01(\tR\x06toDate\x12\x14\n" +
	"\x05limit\x18\x06 \x01(\x05R\x05limit\"S\n" +
	"\x18ListTransactionsResponse\x127\n" +
	"\ftransactions\x18\x01 \x03(\v2\x13.ptr.v1.TransactionR\ftransactions\"%\n" +
	"\x0fGetStatsRequest\x12\x12\n" +
	"\x04year\x18\x01 \x01(\x05R\x04year\"\x92\x02\n" +
	"\x10GetStatsResponse\x12\x18\n" +
	"\afilings\x18\x01 \x01(\x05R\afilings\x12\x1f\n" +
	"\vptr_filings\x18\x02 \x01(\x05R\n" +
	"ptrFilings\x12\x1c\n" +
	"\tdownloads\x18\x03 \x01(\x05R\tdownloads\x12\x1f\n" +
	"\vocr_results\x18\x04 \x01(\x05R\n" +
	"ocrResults\x12\x18\n" +
	"\areports\x18\x05 \x01(\x05R\areports\x12\"\n" +
	"\ftransactions\x18\x06 \x01(\x05R\ftransactions\x12\x1a\n" +
	"\bwarnings\x18\a \x01(\x05R\bwarnings\x12\x16\n" +
	"\x06errors\x18\b \x01(\x05R\x06errors\x12\x12\n" +
	"\x04year\x18\t \x01(\x05R\x04year\"Q\n" +
	"\x19ExportTransactionsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"0\n" +
	"\x1aExportTransactionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xd7\x03\n" +
	"\n" +
	"PtrService\x12F\n" +
	"\vProcessYear\x12\x1a.ptr.v1.ProcessYearRequest\x1a\x1b.ptr.v1.ProcessYearResponse\x12L\n" +
	"\rProcessFiling\x12\x1c.ptr.v1.ProcessFilingRequest\x1a\x1d.ptr.v1.ProcessFilingResponse\x12@\n" +
	"\tGetReport\x12\x18.ptr.v1.GetReportRequest\x1a\x19.ptr.v1.GetReportResponse\x12U\n" +
	"\x10ListTransactions\x12\x1f.ptr.v1.ListTransactionsRequest\x1a .ptr.v1.ListTransactionsResponse\x12=\n" +
	"\bGetStats\x12\x17.ptr.v1.GetStatsRequest\x1a\x18.ptr.v1.GetStatsResponse\x12[\n" +
	"\x12ExportTransactions\x12!.ptr.v1.ExportTransactionsRequest\x1a\".ptr.v1.ExportTransactionsResponseB9Z7github.com/mholloway/ptr-tracker/gen/proto/ptr/v1;ptrv1b\x06proto3"

var (
	file_ptr_v1_ptr_proto_rawDescOnce sync.Once
	file_ptr_v1_ptr_proto_rawDescData []byte
)

func file_ptr_v1_ptr_proto_rawDescGZIP() []byte {
	file_ptr_v1_ptr_proto_rawDescOnce.Do(func() {
		file_ptr_v1_ptr_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ptr_v1_ptr_proto_rawDesc), len(file_ptr_v1_ptr_proto_rawDesc)))
	})
	return file_ptr_v1_ptr_proto_rawDescData
}

var file_ptr_v1_ptr_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_ptr_v1_ptr_proto_goTypes = []any{
	(*ProcessYearRequest)(nil),         // 0: ptr.v1.ProcessYearRequest
	(*ProcessYearResponse)(nil),        // 1: ptr.v1.ProcessYearResponse
	(*ProcessFilingRequest)(nil),       // 2: ptr.v1.ProcessFilingRequest
	(*ProcessFilingResponse)(nil),      // 3: ptr.v1.ProcessFilingResponse
	(*Report)(nil),                     // 4: ptr.v1.Report
	(*Transaction)(nil),                // 5: ptr.v1.Transaction
	(*ParseIssue)(nil),                 // 6: ptr.v1.ParseIssue
	(*GetReportRequest)(nil),           // 7: ptr.v1.GetReportRequest
	(*GetReportResponse)(nil),          // 8: ptr.v1.GetReportResponse
	(*ListTransactionsRequest)(nil),    // 9: ptr.v1.ListTransactionsRequest
	(*ListTransactionsResponse)(nil),   // 10: ptr.v1.ListTransactionsResponse
	(*GetStatsRequest)(nil),            // 11: ptr.v1.GetStatsRequest
	(*GetStatsResponse)(nil),           // 12: ptr.v1.GetStatsResponse
	(*ExportTransactionsRequest)(nil),  // 13: ptr.v1.ExportTransactionsRequest
	(*ExportTransactionsResponse)(nil), // 14: ptr.v1.ExportTransactionsResponse
}
var file_ptr_v1_ptr_proto_depIdxs = []int32{
	4,  // 0: ptr.v1.GetReportResponse.report:type_name -> ptr.v1.Report
	5,  // 1: ptr.v1.GetReportResponse.transactions:type_name -> ptr.v1.Transaction
	6,  // 2: ptr.v1.GetReportResponse.issues:type_name -> ptr.v1.ParseIssue
	5,  // 3: ptr.v1.ListTransactionsResponse.transactions:type_name -> ptr.v1.Transaction
	0,  // 4: ptr.v1.PtrService.ProcessYear:input_type -> ptr.v1.ProcessYearRequest
	2,  // 5: ptr.v1.PtrService.ProcessFiling:input_type -> ptr.v1.ProcessFilingRequest
	7,  // 6: ptr.v1.PtrService.GetReport:input_type -> ptr.v1.GetReportRequest
	9,  // 7: ptr.v1.PtrService.ListTransactions:input_type -> ptr.v1.ListTransactionsRequest
	11, // 8: ptr.v1.PtrService.GetStats:input_type -> ptr.v1.GetStatsRequest
	13, // 9: ptr.v1.PtrService.ExportTransactions:input_type -> ptr.v1.ExportTransactionsRequest
	1,  // 10: ptr.v1.PtrService.ProcessYear:output_type -> ptr.v1.ProcessYearResponse
	3,  // 11: ptr.v1.PtrService.ProcessFiling:output_type -> ptr.v1.ProcessFilingResponse
	8,  // 12: ptr.v1.PtrService.GetReport:output_type -> ptr.v1.GetReportResponse
	10, // 13: ptr.v1.PtrService.ListTransactions:output_type -> ptr.v1.ListTransactionsResponse
	12, // 14: ptr.v1.PtrService.GetStats:output_type -> ptr.v1.GetStatsResponse
	14, // 15: ptr.v1.PtrService.ExportTransactions:output_type -> ptr.v1.ExportTransactionsResponse
	10, // [10:16] is the sub-list for method output_type
	4,  // [4:10] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_ptr_v1_ptr_proto_init() }
func file_ptr_v1_ptr_proto_init() {
	if File_ptr_v1_ptr_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ptr_v1_ptr_proto_rawDesc), len(file_ptr_v1_ptr_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_ptr_v1_ptr_proto_goTypes,
		DependencyIndexes: file_ptr_v1_ptr_proto_depIdxs,
		MessageInfos:      file_ptr_v1_ptr_proto_msgTypes,
	}.Build()
	File_ptr_v1_ptr_proto = out.File
	file_ptr_v1_ptr_proto_goTypes = nil
	file_ptr_v1_ptr_proto_depIdxs = nil
}
