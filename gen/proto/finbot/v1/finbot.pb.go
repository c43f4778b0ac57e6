// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: finbot/v1/finbot.proto

package finbotv1

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

type RegisterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	DisplayName   string                 `protobuf:"bytes,3,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterRequest) Reset() {
	*x = RegisterRequest{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterRequest) ProtoMessage() {}

func (x *RegisterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterRequest.ProtoReflect.Descriptor instead.
func (*RegisterRequest) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{0}
}

func (x *RegisterRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *RegisterRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

func (x *RegisterRequest) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

type RegisterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterResponse) Reset() {
	*x = RegisterResponse{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterResponse) ProtoMessage() {}

func (x *RegisterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterResponse.ProtoReflect.Descriptor instead.
func (*RegisterResponse) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{1}
}

func (x *RegisterResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *RegisterResponse) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type LoginRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginRequest) Reset() {
	*x = LoginRequest{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginRequest) ProtoMessage() {}

func (x *LoginRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginRequest.ProtoReflect.Descriptor instead.
func (*LoginRequest) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{2}
}

func (x *LoginRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *LoginRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type LoginResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccessToken   string                 `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginResponse) Reset() {
	*x = LoginResponse{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginResponse) ProtoMessage() {}

func (x *LoginResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginResponse.ProtoReflect.Descriptor instead.
func (*LoginResponse) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{3}
}

func (x *LoginResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *LoginResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type CreateSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSessionRequest) Reset() {
	*x = CreateSessionRequest{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSessionRequest) ProtoMessage() {}

func (x *CreateSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSessionRequest.ProtoReflect.Descriptor instead.
func (*CreateSessionRequest) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{4}
}

func (x *CreateSessionRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CreateSessionRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

type CreateSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,2,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSessionResponse) Reset() {
	*x = CreateSessionResponse{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSessionResponse) ProtoMessage() {}

func (x *CreateSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSessionResponse.ProtoReflect.Descriptor instead.
func (*CreateSessionResponse) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{5}
}

func (x *CreateSessionResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *CreateSessionResponse) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ExtractionHints struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Language      string                 `protobuf:"bytes,1,opt,name=language,proto3" json:"language,omitempty"`
	Timezone      string                 `protobuf:"bytes,2,opt,name=timezone,proto3" json:"timezone,omitempty"`
	ItemsExpected bool                   `protobuf:"varint,3,opt,name=items_expected,json=itemsExpected,proto3" json:"items_expected,omitempty"`
	Debug         bool                   `protobuf:"varint,4,opt,name=debug,proto3" json:"debug,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractionHints) Reset() {
	*x = ExtractionHints{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionHints) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionHints) ProtoMessage() {}

func (x *ExtractionHints) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionHints.ProtoReflect.Descriptor instead.
func (*ExtractionHints) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{6}
}

func (x *ExtractionHints) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *ExtractionHints) GetTimezone() string {
	if x != nil {
		return x.Timezone
	}
	return ""
}

func (x *ExtractionHints) GetItemsExpected() bool {
	if x != nil {
		return x.ItemsExpected
	}
	return false
}

func (x *ExtractionHints) GetDebug() bool {
	if x != nil {
		return x.Debug
	}
	return false
}

type ExtractExpenseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,4,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Data          []byte                 `protobuf:"bytes,5,opt,name=data,proto3" json:"data,omitempty"`
	Hints         *ExtractionHints       `protobuf:"bytes,6,opt,name=hints,proto3" json:"hints,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractExpenseRequest) Reset() {
	*x = ExtractExpenseRequest{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractExpenseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractExpenseRequest) ProtoMessage() {}

func (x *ExtractExpenseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractExpenseRequest.ProtoReflect.Descriptor instead.
func (*ExtractExpenseRequest) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{7}
}

func (x *ExtractExpenseRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ExtractExpenseRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ExtractExpenseRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExtractExpenseRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *ExtractExpenseRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *ExtractExpenseRequest) GetHints() *ExtractionHints {
	if x != nil {
		return x.Hints
	}
	return nil
}

type Money struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         int64                  `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
	Currency      string                 `protobuf:"bytes,2,opt,name=currency,proto3" json:"currency,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Money) Reset() {
	*x = Money{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Money) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Money) ProtoMessage() {}

func (x *Money) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Money.ProtoReflect.Descriptor instead.
func (*Money) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{8}
}

func (x *Money) GetValue() int64 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *Money) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

type ExpenseCategory struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExpenseCategory) Reset() {
	*x = ExpenseCategory{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExpenseCategory) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExpenseCategory) ProtoMessage() {}

func (x *ExpenseCategory) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExpenseCategory.ProtoReflect.Descriptor instead.
func (*ExpenseCategory) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{9}
}

func (x *ExpenseCategory) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *ExpenseCategory) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ExpenseItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Qty           int32                  `protobuf:"varint,2,opt,name=qty,proto3" json:"qty,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExpenseItem) Reset() {
	*x = ExpenseItem{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExpenseItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExpenseItem) ProtoMessage() {}

func (x *ExpenseItem) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExpenseItem.ProtoReflect.Descriptor instead.
func (*ExpenseItem) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{10}
}

func (x *ExpenseItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ExpenseItem) GetQty() int32 {
	if x != nil {
		return x.Qty
	}
	return 0
}

type ExpenseMeta struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	NeedsReview   bool                   `protobuf:"varint,1,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	Warnings      []string               `protobuf:"bytes,2,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExpenseMeta) Reset() {
	*x = ExpenseMeta{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExpenseMeta) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExpenseMeta) ProtoMessage() {}

func (x *ExpenseMeta) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExpenseMeta.ProtoReflect.Descriptor instead.
func (*ExpenseMeta) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{11}
}

func (x *ExpenseMeta) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *ExpenseMeta) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type Expense struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	TransactionDate string                 `protobuf:"bytes,1,opt,name=transaction_date,json=transactionDate,proto3" json:"transaction_date,omitempty"`
	Amount          *Money                 `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Category        *ExpenseCategory       `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Items           []*ExpenseItem         `protobuf:"bytes,4,rep,name=items,proto3" json:"items,omitempty"`
	Meta            *ExpenseMeta           `protobuf:"bytes,5,opt,name=meta,proto3" json:"meta,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Expense) Reset() {
	*x = Expense{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Expense) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Expense) ProtoMessage() {}

func (x *Expense) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Expense.ProtoReflect.Descriptor instead.
func (*Expense) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{12}
}

func (x *Expense) GetTransactionDate() string {
	if x != nil {
		return x.TransactionDate
	}
	return ""
}

func (x *Expense) GetAmount() *Money {
	if x != nil {
		return x.Amount
	}
	return nil
}

func (x *Expense) GetCategory() *ExpenseCategory {
	if x != nil {
		return x.Category
	}
	return nil
}

func (x *Expense) GetItems() []*ExpenseItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Expense) GetMeta() *ExpenseMeta {
	if x != nil {
		return x.Meta
	}
	return nil
}

type ExtractExpenseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Expense       *Expense               `protobuf:"bytes,3,opt,name=expense,proto3" json:"expense,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractExpenseResponse) Reset() {
	*x = ExtractExpenseResponse{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractExpenseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractExpenseResponse) ProtoMessage() {}

func (x *ExtractExpenseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractExpenseResponse.ProtoReflect.Descriptor instead.
func (*ExtractExpenseResponse) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{13}
}

func (x *ExtractExpenseResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ExtractExpenseResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExtractExpenseResponse) GetExpense() *Expense {
	if x != nil {
		return x.Expense
	}
	return nil
}

type GetExpenseContextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExpenseContextRequest) Reset() {
	*x = GetExpenseContextRequest{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExpenseContextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExpenseContextRequest) ProtoMessage() {}

func (x *GetExpenseContextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExpenseContextRequest.ProtoReflect.Descriptor instead.
func (*GetExpenseContextRequest) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{14}
}

func (x *GetExpenseContextRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type GetExpenseContextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Found         bool                   `protobuf:"varint,1,opt,name=found,proto3" json:"found,omitempty"`
	Expense       *Expense               `protobuf:"bytes,2,opt,name=expense,proto3" json:"expense,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExpenseContextResponse) Reset() {
	*x = GetExpenseContextResponse{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExpenseContextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExpenseContextResponse) ProtoMessage() {}

func (x *GetExpenseContextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExpenseContextResponse.ProtoReflect.Descriptor instead.
func (*GetExpenseContextResponse) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{15}
}

func (x *GetExpenseContextResponse) GetFound() bool {
	if x != nil {
		return x.Found
	}
	return false
}

func (x *GetExpenseContextResponse) GetExpense() *Expense {
	if x != nil {
		return x.Expense
	}
	return nil
}

type ConfirmExpenseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Note          string                 `protobuf:"bytes,3,opt,name=note,proto3" json:"note,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmExpenseRequest) Reset() {
	*x = ConfirmExpenseRequest{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmExpenseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmExpenseRequest) ProtoMessage() {}

func (x *ConfirmExpenseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmExpenseRequest.ProtoReflect.Descriptor instead.
func (*ConfirmExpenseRequest) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{16}
}

func (x *ConfirmExpenseRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ConfirmExpenseRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ConfirmExpenseRequest) GetNote() string {
	if x != nil {
		return x.Note
	}
	return ""
}

type Transaction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TxDate        string                 `protobuf:"bytes,3,opt,name=tx_date,json=txDate,proto3" json:"tx_date,omitempty"` // YYYY-MM-DD
	Amount        int64                  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Currency      string                 `protobuf:"bytes,5,opt,name=currency,proto3" json:"currency,omitempty"`
	CategoryCode  string                 `protobuf:"bytes,6,opt,name=category_code,json=categoryCode,proto3" json:"category_code,omitempty"`
	CategoryName  string                 `protobuf:"bytes,7,opt,name=category_name,json=categoryName,proto3" json:"category_name,omitempty"`
	Note          string                 `protobuf:"bytes,8,opt,name=note,proto3" json:"note,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Transaction) Reset() {
	*x = Transaction{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transaction) ProtoMessage() {}

func (x *Transaction) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[17]
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
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{17}
}

func (x *Transaction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Transaction) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Transaction) GetTxDate() string {
	if x != nil {
		return x.TxDate
	}
	return ""
}

func (x *Transaction) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Transaction) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Transaction) GetCategoryCode() string {
	if x != nil {
		return x.CategoryCode
	}
	return ""
}

func (x *Transaction) GetCategoryName() string {
	if x != nil {
		return x.CategoryName
	}
	return ""
}

func (x *Transaction) GetNote() string {
	if x != nil {
		return x.Note
	}
	return ""
}

func (x *Transaction) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ConfirmExpenseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transaction   *Transaction           `protobuf:"bytes,1,opt,name=transaction,proto3" json:"transaction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmExpenseResponse) Reset() {
	*x = ConfirmExpenseResponse{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmExpenseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmExpenseResponse) ProtoMessage() {}

func (x *ConfirmExpenseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmExpenseResponse.ProtoReflect.Descriptor instead.
func (*ConfirmExpenseResponse) Descriptor() ([]byte, []int) {
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{18}
}

func (x *ConfirmExpenseResponse) GetTransaction() *Transaction {
	if x != nil {
		return x.Transaction
	}
	return nil
}

type ListTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsRequest) Reset() {
	*x = ListTransactionsRequest{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsRequest) ProtoMessage() {}

func (x *ListTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[19]
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
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{19}
}

func (x *ListTransactionsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
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

type ListTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transactions  []*Transaction         `protobuf:"bytes,1,rep,name=transactions,proto3" json:"transactions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsResponse) Reset() {
	*x = ListTransactionsResponse{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsResponse) ProtoMessage() {}

func (x *ListTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[20]
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
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{20}
}

func (x *ListTransactionsResponse) GetTransactions() []*Transaction {
	if x != nil {
		return x.Transactions
	}
	return nil
}

type ExportTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsRequest) Reset() {
	*x = ExportTransactionsRequest{}
	mi := &file_finbot_v1_finbot_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsRequest) ProtoMessage() {}

func (x *ExportTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[21]
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
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{21}
}

func (x *ExportTransactionsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
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
	mi := &file_finbot_v1_finbot_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsResponse) ProtoMessage() {}

func (x *ExportTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finbot_v1_finbot_proto_msgTypes[22]
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
	return file_finbot_v1_finbot_proto_rawDescGZIP(), []int{22}
}

func (x *ExportTransactionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_finbot_v1_finbot_proto protoreflect.FileDescriptor

const file_finbot_v1_finbot_proto_rawDesc = "" +
	"\n" +
	"\x16finbot/v1/finbot.proto\x12\tfinbot.v1\"f\n" +
	"\x0fRegisterRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x1a\n" +
	"\bpassword\x18\x02 \x01(\tR\bpassword\x12!\n" +
	"\fdisplay_name\x18\x03 \x01(\tR\vdisplayName\"A\n" +
	"\x10RegisterResponse\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\"@\n" +
	"\fLoginRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x1a\n" +
	"\bpassword\x18\x02 \x01(\tR\bpassword\"K\n" +
	"\rLoginResponse\x12!\n" +
	"\faccess_token\x18\x01 \x01(\tR\vaccessToken\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"E\n" +
	"\x14CreateSessionRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\"U\n" +
	"\x15CreateSessionResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x1d\n" +
	"\n" +
	"created_at\x18\x02 \x01(\tR\tcreatedAt\"\x86\x01\n" +
	"\x0fExtractionHints\x12\x1a\n" +
	"\blanguage\x18\x01 \x01(\tR\blanguage\x12\x1a\n" +
	"\btimezone\x18\x02 \x01(\tR\btimezone\x12%\n" +
	"\x0eitems_expected\x18\x03 \x01(\bR\ritemsExpected\x12\x14\n" +
	"\x05debug\x18\x04 \x01(\bR\x05debug\"\xd4\x01\n" +
	"\x15ExtractExpenseRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x04 \x01(\tR\vcontentType\x12\x12\n" +
	"\x04data\x18\x05 \x01(\fR\x04data\x120\n" +
	"\x05hints\x18\x06 \x01(\v2\x1a.finbot.v1.ExtractionHintsR\x05hints\"9\n" +
	"\x05Money\x12\x14\n" +
	"\x05value\x18\x01 \x01(\x03R\x05value\x12\x1a\n" +
	"\bcurrency\x18\x02 \x01(\tR\bcurrency\"9\n" +
	"\x0fExpenseCategory\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"3\n" +
	"\vExpenseItem\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x10\n" +
	"\x03qty\x18\x02 \x01(\x05R\x03qty\"L\n" +
	"\vExpenseMeta\x12!\n" +
	"\fneeds_review\x18\x01 \x01(\bR\vneedsReview\x12\x1a\n" +
	"\bwarnings\x18\x02 \x03(\tR\bwarnings\"\xf0\x01\n" +
	"\aExpense\x12)\n" +
	"\x10transaction_date\x18\x01 \x01(\tR\x0ftransactionDate\x12(\n" +
	"\x06amount\x18\x02 \x01(\v2\x10.finbot.v1.MoneyR\x06amount\x126\n" +
	"\bcategory\x18\x03 \x01(\v2\x1a.finbot.v1.ExpenseCategoryR\bcategory\x12,\n" +
	"\x05items\x18\x04 \x03(\v2\x16.finbot.v1.ExpenseItemR\x05items\x12*\n" +
	"\x04meta\x18\x05 \x01(\v2\x16.finbot.v1.ExpenseMetaR\x04meta\"u\n" +
	"\x16ExtractExpenseResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12,\n" +
	"\aexpense\x18\x03 \x01(\v2\x12.finbot.v1.ExpenseR\aexpense\"9\n" +
	"\x18GetExpenseContextRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"_\n" +
	"\x19GetExpenseContextResponse\x12\x14\n" +
	"\x05found\x18\x01 \x01(\bR\x05found\x12,\n" +
	"\aexpense\x18\x02 \x01(\v2\x12.finbot.v1.ExpenseR\aexpense\"c\n" +
	"\x15ConfirmExpenseRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x12\n" +
	"\x04note\x18\x03 \x01(\tR\x04note\"\x80\x02\n" +
	"\vTransaction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x17\n" +
	"\atx_date\x18\x03 \x01(\tR\x06txDate\x12\x16\n" +
	"\x06amount\x18\x04 \x01(\x03R\x06amount\x12\x1a\n" +
	"\bcurrency\x18\x05 \x01(\tR\bcurrency\x12#\n" +
	"\rcategory_code\x18\x06 \x01(\tR\fcategoryCode\x12#\n" +
	"\rcategory_name\x18\a \x01(\tR\fcategoryName\x12\x12\n" +
	"\x04note\x18\b \x01(\tR\x04note\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\"R\n" +
	"\x16ConfirmExpenseResponse\x128\n" +
	"\vtransaction\x18\x01 \x01(\v2\x16.finbot.v1.TransactionR\vtransaction\"h\n" +
	"\x17ListTransactionsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"V\n" +
	"\x18ListTransactionsResponse\x12:\n" +
	"\ftransactions\x18\x01 \x03(\v2\x16.finbot.v1.TransactionR\ftransactions\"j\n" +
	"\x19ExportTransactionsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"0\n" +
	"\x1aExportTransactionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x8e\x01\n" +
	"\vAuthService\x12C\n" +
	"\bRegister\x12\x1a.finbot.v1.RegisterRequest\x1a\x1b.finbot.v1.RegisterResponse\x12:\n" +
	"\x05Login\x12\x17.finbot.v1.LoginRequest\x1a\x18.finbot.v1.LoginResponse2e\n" +
	"\x0fSessionsService\x12R\n" +
	"\rCreateSession\x12\x1f.finbot.v1.CreateSessionRequest\x1a .finbot.v1.CreateSessionResponse2\xc3\x01\n" +
	"\n" +
	"OcrService\x12U\n" +
	"\x0eExtractExpense\x12 .finbot.v1.ExtractExpenseRequest\x1a!.finbot.v1.ExtractExpenseResponse\x12^\n" +
	"\x11GetExpenseContext\x12#.finbot.v1.GetExpenseContextRequest\x1a$.finbot.v1.GetExpenseContextResponse2\xac\x02\n" +
	"\x13TransactionsService\x12U\n" +
	"\x0eConfirmExpense\x12 .finbot.v1.ConfirmExpenseRequest\x1a!.finbot.v1.ConfirmExpenseResponse\x12[\n" +
	"\x10ListTransactions\x12\".finbot.v1.ListTransactionsRequest\x1a#.finbot.v1.ListTransactionsResponse\x12a\n" +
	"\x12ExportTransactions\x12$.finbot.v1.ExportTransactionsRequest\x1a%.finbot.v1.ExportTransactionsResponseB:Z8github.com/finbot-vn/finbot/gen/proto/finbot/v1;finbotv1b\x06proto3"

var (
	file_finbot_v1_finbot_proto_rawDescOnce sync.Once
	file_finbot_v1_finbot_proto_rawDescData []byte
)

func file_finbot_v1_finbot_proto_rawDescGZIP() []byte {
	file_finbot_v1_finbot_proto_rawDescOnce.Do(func() {
		file_finbot_v1_finbot_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_finbot_v1_finbot_proto_rawDesc), len(file_finbot_v1_finbot_proto_rawDesc)))
	})
	return file_finbot_v1_finbot_proto_rawDescData
}

var file_finbot_v1_finbot_proto_msgTypes = make([]protoimpl.MessageInfo, 23)
var file_finbot_v1_finbot_proto_goTypes = []any{
	(*RegisterRequest)(nil),            // 0: finbot.v1.RegisterRequest
	(*RegisterResponse)(nil),           // 1: finbot.v1.RegisterResponse
	(*LoginRequest)(nil),               // 2: finbot.v1.LoginRequest
	(*LoginResponse)(nil),              // 3: finbot.v1.LoginResponse
	(*CreateSessionRequest)(nil),       // 4: finbot.v1.CreateSessionRequest
	(*CreateSessionResponse)(nil),      // 5: finbot.v1.CreateSessionResponse
	(*ExtractionHints)(nil),            // 6: finbot.v1.ExtractionHints
	(*ExtractExpenseRequest)(nil),      // 7: finbot.v1.ExtractExpenseRequest
	(*Money)(nil),                      // 8: finbot.v1.Money
	(*ExpenseCategory)(nil),            // 9: finbot.v1.ExpenseCategory
	(*ExpenseItem)(nil),                // 10: finbot.v1.ExpenseItem
	(*ExpenseMeta)(nil),                // 11: finbot.v1.ExpenseMeta
	(*Expense)(nil),                    // 12: finbot.v1.Expense
	(*ExtractExpenseResponse)(nil),     // 13: finbot.v1.ExtractExpenseResponse
	(*GetExpenseContextRequest)(nil),   // 14: finbot.v1.GetExpenseContextRequest
	(*GetExpenseContextResponse)(nil),  // 15: finbot.v1.GetExpenseContextResponse
	(*ConfirmExpenseRequest)(nil),      // 16: finbot.v1.ConfirmExpenseRequest
	(*Transaction)(nil),                // 17: finbot.v1.Transaction
	(*ConfirmExpenseResponse)(nil),     // 18: finbot.v1.ConfirmExpenseResponse
	(*ListTransactionsRequest)(nil),    // 19: finbot.v1.ListTransactionsRequest
	(*ListTransactionsResponse)(nil),   // 20: finbot.v1.ListTransactionsResponse
	(*ExportTransactionsRequest)(nil),  // 21: finbot.v1.ExportTransactionsRequest
	(*ExportTransactionsResponse)(nil), // 22: finbot.v1.ExportTransactionsResponse
}
var file_finbot_v1_finbot_proto_depIdxs = []int32{
	6,  // 0: finbot.v1.ExtractExpenseRequest.hints:type_name -> finbot.v1.ExtractionHints
	8,  // 1: finbot.v1.Expense.amount:type_name -> finbot.v1.Money
	9,  // 2: finbot.v1.Expense.category:type_name -> finbot.v1.ExpenseCategory
	10, // 3: finbot.v1.Expense.items:type_name -> finbot.v1.ExpenseItem
	11, // 4: finbot.v1.Expense.meta:type_name -> finbot.v1.ExpenseMeta
	12, // 5: finbot.v1.ExtractExpenseResponse.expense:type_name -> finbot.v1.Expense
	12, // 6: finbot.v1.GetExpenseContextResponse.expense:type_name -> finbot.v1.Expense
	17, // 7: finbot.v1.ConfirmExpenseResponse.transaction:type_name -> finbot.v1.Transaction
	17, // 8: finbot.v1.ListTransactionsResponse.transactions:type_name -> finbot.v1.Transaction
	0,  // 9: finbot.v1.AuthService.Register:input_type -> finbot.v1.RegisterRequest
	2,  // 10: finbot.v1.AuthService.Login:input_type -> finbot.v1.LoginRequest
	4,  // 11: finbot.v1.SessionsService.CreateSession:input_type -> finbot.v1.CreateSessionRequest
	7,  // 12: finbot.v1.OcrService.ExtractExpense:input_type -> finbot.v1.ExtractExpenseRequest
	14, // 13: finbot.v1.OcrService.GetExpenseContext:input_type -> finbot.v1.GetExpenseContextRequest
	16, // 14: finbot.v1.TransactionsService.ConfirmExpense:input_type -> finbot.v1.ConfirmExpenseRequest
	19, // 15: finbot.v1.TransactionsService.ListTransactions:input_type -> finbot.v1.ListTransactionsRequest
	21, // 16: finbot.v1.TransactionsService.ExportTransactions:input_type -> finbot.v1.ExportTransactionsRequest
	1,  // 17: finbot.v1.AuthService.Register:output_type -> finbot.v1.RegisterResponse
	3,  // 18: finbot.v1.AuthService.Login:output_type -> finbot.v1.LoginResponse
	5,  // 19: finbot.v1.SessionsService.CreateSession:output_type -> finbot.v1.CreateSessionResponse
	13, // 20: finbot.v1.OcrService.ExtractExpense:output_type -> finbot.v1.ExtractExpenseResponse
	15, // 21: finbot.v1.OcrService.GetExpenseContext:output_type -> finbot.v1.GetExpenseContextResponse
	18, // 22: finbot.v1.TransactionsService.ConfirmExpense:output_type -> finbot.v1.ConfirmExpenseResponse
	20, // 23: finbot.v1.TransactionsService.ListTransactions:output_type -> finbot.v1.ListTransactionsResponse
	22, // 24: finbot.v1.TransactionsService.ExportTransactions:output_type -> finbot.v1.ExportTransactionsResponse
	17, // [17:25] is the sub-list for method output_type
	9,  // [9:17] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_finbot_v1_finbot_proto_init() }
func file_finbot_v1_finbot_proto_init() {
	if File_finbot_v1_finbot_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_finbot_v1_finbot_proto_rawDesc), len(file_finbot_v1_finbot_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   23,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_finbot_v1_finbot_proto_goTypes,
		DependencyIndexes: file_finbot_v1_finbot_proto_depIdxs,
		MessageInfos:      file_finbot_v1_finbot_proto_msgTypes,
	}.Build()
	File_finbot_v1_finbot_proto = out.File
	file_finbot_v1_finbot_proto_goTypes = nil
	file_finbot_v1_finbot_proto_depIdxs = nil
}
