// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: cards/v1/cards.proto

package cardspb

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

type Profile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Locale        string                 `protobuf:"bytes,3,opt,name=locale,proto3" json:"locale,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_cards_v1_cards_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{0}
}

func (x *Profile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Profile) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Profile) GetLocale() string {
	if x != nil {
		return x.Locale
	}
	return ""
}

func (x *Profile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Profile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Contact struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Company       string                 `protobuf:"bytes,4,opt,name=company,proto3" json:"company,omitempty"`
	Email         string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,6,opt,name=phone,proto3" json:"phone,omitempty"`
	JobTitle      string                 `protobuf:"bytes,7,opt,name=job_title,json=jobTitle,proto3" json:"job_title,omitempty"`
	Website       string                 `protobuf:"bytes,8,opt,name=website,proto3" json:"website,omitempty"`
	Address       string                 `protobuf:"bytes,9,opt,name=address,proto3" json:"address,omitempty"`
	Outcome       string                 `protobuf:"bytes,10,opt,name=outcome,proto3" json:"outcome,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Contact) Reset() {
	*x = Contact{}
	mi := &file_cards_v1_cards_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contact) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contact) ProtoMessage() {}

func (x *Contact) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contact.ProtoReflect.Descriptor instead.
func (*Contact) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{1}
}

func (x *Contact) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contact) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *Contact) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Contact) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *Contact) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Contact) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Contact) GetJobTitle() string {
	if x != nil {
		return x.JobTitle
	}
	return ""
}

func (x *Contact) GetWebsite() string {
	if x != nil {
		return x.Website
	}
	return ""
}

func (x *Contact) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Contact) GetOutcome() string {
	if x != nil {
		return x.Outcome
	}
	return ""
}

func (x *Contact) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Contact) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreditEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	ScanId        string                 `protobuf:"bytes,3,opt,name=scan_id,json=scanId,proto3" json:"scan_id,omitempty"`
	Delta         int32                  `protobuf:"varint,4,opt,name=delta,proto3" json:"delta,omitempty"`
	Reason        string                 `protobuf:"bytes,5,opt,name=reason,proto3" json:"reason,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreditEntry) Reset() {
	*x = CreditEntry{}
	mi := &file_cards_v1_cards_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreditEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreditEntry) ProtoMessage() {}

func (x *CreditEntry) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreditEntry.ProtoReflect.Descriptor instead.
func (*CreditEntry) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{2}
}

func (x *CreditEntry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CreditEntry) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *CreditEntry) GetScanId() string {
	if x != nil {
		return x.ScanId
	}
	return ""
}

func (x *CreditEntry) GetDelta() int32 {
	if x != nil {
		return x.Delta
	}
	return 0
}

func (x *CreditEntry) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *CreditEntry) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Locale        string                 `protobuf:"bytes,2,opt,name=locale,proto3" json:"locale,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{3}
}

func (x *CreateProfileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProfileRequest) GetLocale() string {
	if x != nil {
		return x.Locale
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{4}
}

func (x *CreateProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type ListProfilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesRequest) Reset() {
	*x = ListProfilesRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesRequest) ProtoMessage() {}

func (x *ListProfilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesRequest.ProtoReflect.Descriptor instead.
func (*ListProfilesRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{5}
}

type ListProfilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profiles      []*Profile             `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesResponse) Reset() {
	*x = ListProfilesResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesResponse) ProtoMessage() {}

func (x *ListProfilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesResponse.ProtoReflect.Descriptor instead.
func (*ListProfilesResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{6}
}

func (x *ListProfilesResponse) GetProfiles() []*Profile {
	if x != nil {
		return x.Profiles
	}
	return nil
}

type ScanCardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	OcrText       string                 `protobuf:"bytes,2,opt,name=ocr_text,json=ocrText,proto3" json:"ocr_text,omitempty"`
	QrPayload     string                 `protobuf:"bytes,3,opt,name=qr_payload,json=qrPayload,proto3" json:"qr_payload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanCardRequest) Reset() {
	*x = ScanCardRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanCardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanCardRequest) ProtoMessage() {}

func (x *ScanCardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanCardRequest.ProtoReflect.Descriptor instead.
func (*ScanCardRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{7}
}

func (x *ScanCardRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ScanCardRequest) GetOcrText() string {
	if x != nil {
		return x.OcrText
	}
	return ""
}

func (x *ScanCardRequest) GetQrPayload() string {
	if x != nil {
		return x.QrPayload
	}
	return ""
}

type ScanCardResponse struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	Contact      *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	ScanId       string                 `protobuf:"bytes,2,opt,name=scan_id,json=scanId,proto3" json:"scan_id,omitempty"`
	JobId        string                 `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Deduplicated bool                   `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	// true when the heuristic outcome is not COMPLETE; enrichment may still be
	// running in the background.
	NeedsReview   bool `protobuf:"varint,5,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanCardResponse) Reset() {
	*x = ScanCardResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanCardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanCardResponse) ProtoMessage() {}

func (x *ScanCardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanCardResponse.ProtoReflect.Descriptor instead.
func (*ScanCardResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{8}
}

func (x *ScanCardResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

func (x *ScanCardResponse) GetScanId() string {
	if x != nil {
		return x.ScanId
	}
	return ""
}

func (x *ScanCardResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ScanCardResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *ScanCardResponse) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

type GetContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContactId     string                 `protobuf:"bytes,1,opt,name=contact_id,json=contactId,proto3" json:"contact_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContactRequest) Reset() {
	*x = GetContactRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContactRequest) ProtoMessage() {}

func (x *GetContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContactRequest.ProtoReflect.Descriptor instead.
func (*GetContactRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{9}
}

func (x *GetContactRequest) GetContactId() string {
	if x != nil {
		return x.ContactId
	}
	return ""
}

type GetContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContactResponse) Reset() {
	*x = GetContactResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContactResponse) ProtoMessage() {}

func (x *GetContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContactResponse.ProtoReflect.Descriptor instead.
func (*GetContactResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{10}
}

func (x *GetContactResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type ListContactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContactsRequest) Reset() {
	*x = ListContactsRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContactsRequest) ProtoMessage() {}

func (x *ListContactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContactsRequest.ProtoReflect.Descriptor instead.
func (*ListContactsRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{11}
}

func (x *ListContactsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ListContactsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListContactsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListContactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contacts      []*Contact             `protobuf:"bytes,1,rep,name=contacts,proto3" json:"contacts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContactsResponse) Reset() {
	*x = ListContactsResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContactsResponse) ProtoMessage() {}

func (x *ListContactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContactsResponse.ProtoReflect.Descriptor instead.
func (*ListContactsResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{12}
}

func (x *ListContactsResponse) GetContacts() []*Contact {
	if x != nil {
		return x.Contacts
	}
	return nil
}

type ExportContactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContactsRequest) Reset() {
	*x = ExportContactsRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContactsRequest) ProtoMessage() {}

func (x *ExportContactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContactsRequest.ProtoReflect.Descriptor instead.
func (*ExportContactsRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{13}
}

func (x *ExportContactsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExportContactsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportContactsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportContactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContactsResponse) Reset() {
	*x = ExportContactsResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContactsResponse) ProtoMessage() {}

func (x *ExportContactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContactsResponse.ProtoReflect.Descriptor instead.
func (*ExportContactsResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{14}
}

func (x *ExportContactsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportContactsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type DraftFollowUpEmailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContactId     string                 `protobuf:"bytes,1,opt,name=contact_id,json=contactId,proto3" json:"contact_id,omitempty"`
	Sender        string                 `protobuf:"bytes,2,opt,name=sender,proto3" json:"sender,omitempty"`
	Occasion      string                 `protobuf:"bytes,3,opt,name=occasion,proto3" json:"occasion,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DraftFollowUpEmailRequest) Reset() {
	*x = DraftFollowUpEmailRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DraftFollowUpEmailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DraftFollowUpEmailRequest) ProtoMessage() {}

func (x *DraftFollowUpEmailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DraftFollowUpEmailRequest.ProtoReflect.Descriptor instead.
func (*DraftFollowUpEmailRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{15}
}

func (x *DraftFollowUpEmailRequest) GetContactId() string {
	if x != nil {
		return x.ContactId
	}
	return ""
}

func (x *DraftFollowUpEmailRequest) GetSender() string {
	if x != nil {
		return x.Sender
	}
	return ""
}

func (x *DraftFollowUpEmailRequest) GetOccasion() string {
	if x != nil {
		return x.Occasion
	}
	return ""
}

type DraftFollowUpEmailResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Body          string                 `protobuf:"bytes,1,opt,name=body,proto3" json:"body,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DraftFollowUpEmailResponse) Reset() {
	*x = DraftFollowUpEmailResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DraftFollowUpEmailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DraftFollowUpEmailResponse) ProtoMessage() {}

func (x *DraftFollowUpEmailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DraftFollowUpEmailResponse.ProtoReflect.Descriptor instead.
func (*DraftFollowUpEmailResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{16}
}

func (x *DraftFollowUpEmailResponse) GetBody() string {
	if x != nil {
		return x.Body
	}
	return ""
}

type GetBalanceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalanceRequest) Reset() {
	*x = GetBalanceRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceRequest) ProtoMessage() {}

func (x *GetBalanceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceRequest.ProtoReflect.Descriptor instead.
func (*GetBalanceRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{17}
}

func (x *GetBalanceRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type GetBalanceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Balance       int32                  `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalanceResponse) Reset() {
	*x = GetBalanceResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceResponse) ProtoMessage() {}

func (x *GetBalanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceResponse.ProtoReflect.Descriptor instead.
func (*GetBalanceResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{18}
}

func (x *GetBalanceResponse) GetBalance() int32 {
	if x != nil {
		return x.Balance
	}
	return 0
}

type GrantCreditsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Amount        int32                  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GrantCreditsRequest) Reset() {
	*x = GrantCreditsRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GrantCreditsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GrantCreditsRequest) ProtoMessage() {}

func (x *GrantCreditsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GrantCreditsRequest.ProtoReflect.Descriptor instead.
func (*GrantCreditsRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{19}
}

func (x *GrantCreditsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *GrantCreditsRequest) GetAmount() int32 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type GrantCreditsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Balance       int32                  `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GrantCreditsResponse) Reset() {
	*x = GrantCreditsResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GrantCreditsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GrantCreditsResponse) ProtoMessage() {}

func (x *GrantCreditsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GrantCreditsResponse.ProtoReflect.Descriptor instead.
func (*GrantCreditsResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{20}
}

func (x *GrantCreditsResponse) GetBalance() int32 {
	if x != nil {
		return x.Balance
	}
	return 0
}

type ListCreditEntriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCreditEntriesRequest) Reset() {
	*x = ListCreditEntriesRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCreditEntriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCreditEntriesRequest) ProtoMessage() {}

func (x *ListCreditEntriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCreditEntriesRequest.ProtoReflect.Descriptor instead.
func (*ListCreditEntriesRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{21}
}

func (x *ListCreditEntriesRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type ListCreditEntriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*CreditEntry         `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCreditEntriesResponse) Reset() {
	*x = ListCreditEntriesResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCreditEntriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCreditEntriesResponse) ProtoMessage() {}

func (x *ListCreditEntriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCreditEntriesResponse.ProtoReflect.Descriptor instead.
func (*ListCreditEntriesResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{22}
}

func (x *ListCreditEntriesResponse) GetEntries() []*CreditEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

var File_cards_v1_cards_proto protoreflect.FileDescriptor

const file_cards_v1_cards_proto_rawDesc = "" +
	"\n" +
	"\x14cards/v1/cards.proto\x12\bcards.v1\"\x83\x01\n" +
	"\aProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06locale\x18\x03 \x01(\tR\x06locale\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\"\xbb\x02\n" +
	"\aContact\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x18\n" +
	"\acompany\x18\x04 \x01(\tR\acompany\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x06 \x01(\tR\x05phone\x12\x1b\n" +
	"\tjob_title\x18\a \x01(\tR\bjobTitle\x12\x18\n" +
	"\awebsite\x18\b \x01(\tR\awebsite\x12\x18\n" +
	"\aaddress\x18\t \x01(\tR\aaddress\x12\x18\n" +
	"\aoutcome\x18\n" +
	" \x01(\tR\aoutcome\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\"\xa2\x01\n" +
	"\vCreditEntry\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12\x17\n" +
	"\ascan_id\x18\x03 \x01(\tR\x06scanId\x12\x14\n" +
	"\x05delta\x18\x04 \x01(\x05R\x05delta\x12\x16\n" +
	"\x06reason\x18\x05 \x01(\tR\x06reason\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"B\n" +
	"\x14CreateProfileRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x16\n" +
	"\x06locale\x18\x02 \x01(\tR\x06locale\"D\n" +
	"\x15CreateProfileResponse\x12+\n" +
	"\aprofile\x18\x01 \x01(\v2\x11.cards.v1.ProfileR\aprofile\"\x15\n" +
	"\x13ListProfilesRequest\"E\n" +
	"\x14ListProfilesResponse\x12-\n" +
	"\bprofiles\x18\x01 \x03(\v2\x11.cards.v1.ProfileR\bprofiles\"j\n" +
	"\x0fScanCardRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x19\n" +
	"\bocr_text\x18\x02 \x01(\tR\aocrText\x12\x1d\n" +
	"\n" +
	"qr_payload\x18\x03 \x01(\tR\tqrPayload\"\xb6\x01\n" +
	"\x10ScanCardResponse\x12+\n" +
	"\acontact\x18\x01 \x01(\v2\x11.cards.v1.ContactR\acontact\x12\x17\n" +
	"\ascan_id\x18\x02 \x01(\tR\x06scanId\x12\x15\n" +
	"\x06job_id\x18\x03 \x01(\tR\x05jobId\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\bR\fdeduplicated\x12!\n" +
	"\fneeds_review\x18\x05 \x01(\bR\vneedsReview\"2\n" +
	"\x11GetContactRequest\x12\x1d\n" +
	"\n" +
	"contact_id\x18\x01 \x01(\tR\tcontactId\"A\n" +
	"\x12GetContactResponse\x12+\n" +
	"\acontact\x18\x01 \x01(\v2\x11.cards.v1.ContactR\acontact\"j\n" +
	"\x13ListContactsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"E\n" +
	"\x14ListContactsResponse\x12-\n" +
	"\bcontacts\x18\x01 \x03(\v2\x11.cards.v1.ContactR\bcontacts\"l\n" +
	"\x15ExportContactsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"H\n" +
	"\x16ExportContactsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"n\n" +
	"\x19DraftFollowUpEmailRequest\x12\x1d\n" +
	"\n" +
	"contact_id\x18\x01 \x01(\tR\tcontactId\x12\x16\n" +
	"\x06sender\x18\x02 \x01(\tR\x06sender\x12\x1a\n" +
	"\boccasion\x18\x03 \x01(\tR\boccasion\"0\n" +
	"\x1aDraftFollowUpEmailResponse\x12\x12\n" +
	"\x04body\x18\x01 \x01(\tR\x04body\"2\n" +
	"\x11GetBalanceRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\".\n" +
	"\x12GetBalanceResponse\x12\x18\n" +
	"\abalance\x18\x01 \x01(\x05R\abalance\"L\n" +
	"\x13GrantCreditsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x05R\x06amount\"0\n" +
	"\x14GrantCreditsResponse\x12\x18\n" +
	"\abalance\x18\x01 \x01(\x05R\abalance\"9\n" +
	"\x18ListCreditEntriesRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"L\n" +
	"\x19ListCreditEntriesResponse\x12/\n" +
	"\aentries\x18\x01 \x03(\v2\x15.cards.v1.CreditEntryR\aentries2\xb2\x01\n" +
	"\x0fProfilesService\x12P\n" +
	"\rCreateProfile\x12\x1e.cards.v1.CreateProfileRequest\x1a\x1f.cards.v1.CreateProfileResponse\x12M\n" +
	"\fListProfiles\x12\x1d.cards.v1.ListProfilesRequest\x1a\x1e.cards.v1.ListProfilesResponse2\x9f\x03\n" +
	"\fCardsService\x12A\n" +
	"\bScanCard\x12\x19.cards.v1.ScanCardRequest\x1a\x1a.cards.v1.ScanCardResponse\x12G\n" +
	"\n" +
	"GetContact\x12\x1b.cards.v1.GetContactRequest\x1a\x1c.cards.v1.GetContactResponse\x12M\n" +
	"\fListContacts\x12\x1d.cards.v1.ListContactsRequest\x1a\x1e.cards.v1.ListContactsResponse\x12S\n" +
	"\x0eExportContacts\x12\x1f.cards.v1.ExportContactsRequest\x1a .cards.v1.ExportContactsResponse\x12_\n" +
	"\x12DraftFollowUpEmail\x12#.cards.v1.DraftFollowUpEmailRequest\x1a$.cards.v1.DraftFollowUpEmailResponse2\x86\x02\n" +
	"\x0eCreditsService\x12G\n" +
	"\n" +
	"GetBalance\x12\x1b.cards.v1.GetBalanceRequest\x1a\x1c.cards.v1.GetBalanceResponse\x12M\n" +
	"\fGrantCredits\x12\x1d.cards.v1.GrantCreditsRequest\x1a\x1e.cards.v1.GrantCreditsResponse\x12\\\n" +
	"\x11ListCreditEntries\x12\".cards.v1.ListCreditEntriesRequest\x1a#.cards.v1.ListCreditEntriesResponseB;Z9github.com/lbeckmann/cardvault/gen/proto/cards/v1;cardspbb\x06proto3"

var (
	file_cards_v1_cards_proto_rawDescOnce sync.Once
	file_cards_v1_cards_proto_rawDescData []byte
)

func file_cards_v1_cards_proto_rawDescGZIP() []byte {
	file_cards_v1_cards_proto_rawDescOnce.Do(func() {
		file_cards_v1_cards_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_cards_v1_cards_proto_rawDesc), len(file_cards_v1_cards_proto_rawDesc)))
	})
	return file_cards_v1_cards_proto_rawDescData
}

var file_cards_v1_cards_proto_msgTypes = make([]protoimpl.MessageInfo, 23)
var file_cards_v1_cards_proto_goTypes = []any{
	(*Profile)(nil),                    // 0: cards.v1.Profile
	(*Contact)(nil),                    // 1: cards.v1.Contact
	(*CreditEntry)(nil),                // 2: cards.v1.CreditEntry
	(*CreateProfileRequest)(nil),       // 3: cards.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil),      // 4: cards.v1.CreateProfileResponse
	(*ListProfilesRequest)(nil),        // 5: cards.v1.ListProfilesRequest
	(*ListProfilesResponse)(nil),       // 6: cards.v1.ListProfilesResponse
	(*ScanCardRequest)(nil),            // 7: cards.v1.ScanCardRequest
	(*ScanCardResponse)(nil),           // 8: cards.v1.ScanCardResponse
	(*GetContactRequest)(nil),          // 9: cards.v1.GetContactRequest
	(*GetContactResponse)(nil),         // 10: cards.v1.GetContactResponse
	(*ListContactsRequest)(nil),        // 11: cards.v1.ListContactsRequest
	(*ListContactsResponse)(nil),       // 12: cards.v1.ListContactsResponse
	(*ExportContactsRequest)(nil),      // 13: cards.v1.ExportContactsRequest
	(*ExportContactsResponse)(nil),     // 14: cards.v1.ExportContactsResponse
	(*DraftFollowUpEmailRequest)(nil),  // 15: cards.v1.DraftFollowUpEmailRequest
	(*DraftFollowUpEmailResponse)(nil), // 16: cards.v1.DraftFollowUpEmailResponse
	(*GetBalanceRequest)(nil),          // 17: cards.v1.GetBalanceRequest
	(*GetBalanceResponse)(nil),         // 18: cards.v1.GetBalanceResponse
	(*GrantCreditsRequest)(nil),        // 19: cards.v1.GrantCreditsRequest
	(*GrantCreditsResponse)(nil),       // 20: cards.v1.GrantCreditsResponse
	(*ListCreditEntriesRequest)(nil),   // 21: cards.v1.ListCreditEntriesRequest
	(*ListCreditEntriesResponse)(nil),  // 22: cards.v1.ListCreditEntriesResponse
}
var file_cards_v1_cards_proto_depIdxs = []int32{
	0,  // 0: cards.v1.CreateProfileResponse.profile:type_name -> cards.v1.Profile
	0,  // 1: cards.v1.ListProfilesResponse.profiles:type_name -> cards.v1.Profile
	1,  // 2: cards.v1.ScanCardResponse.contact:type_name -> cards.v1.Contact
	1,  // 3: cards.v1.GetContactResponse.contact:type_name -> cards.v1.Contact
	1,  // 4: cards.v1.ListContactsResponse.contacts:type_name -> cards.v1.Contact
	2,  // 5: cards.v1.ListCreditEntriesResponse.entries:type_name -> cards.v1.CreditEntry
	3,  // 6: cards.v1.ProfilesService.CreateProfile:input_type -> cards.v1.CreateProfileRequest
	5,  // 7: cards.v1.ProfilesService.ListProfiles:input_type -> cards.v1.ListProfilesRequest
	7,  // 8: cards.v1.CardsService.ScanCard:input_type -> cards.v1.ScanCardRequest
	9,  // 9: cards.v1.CardsService.GetContact:input_type -> cards.v1.GetContactRequest
	11, // 10: cards.v1.CardsService.ListContacts:input_type -> cards.v1.ListContactsRequest
	13, // 11: cards.v1.CardsService.ExportContacts:input_type -> cards.v1.ExportContactsRequest
	15, // 12: cards.v1.CardsService.DraftFollowUpEmail:input_type -> cards.v1.DraftFollowUpEmailRequest
	17, // 13: cards.v1.CreditsService.GetBalance:input_type -> cards.v1.GetBalanceRequest
	19, // 14: cards.v1.CreditsService.GrantCredits:input_type -> cards.v1.GrantCreditsRequest
	21, // 15: cards.v1.CreditsService.ListCreditEntries:input_type -> cards.v1.ListCreditEntriesRequest
	4,  // 16: cards.v1.ProfilesService.CreateProfile:output_type -> cards.v1.CreateProfileResponse
	6,  // 17: cards.v1.ProfilesService.ListProfiles:output_type -> cards.v1.ListProfilesResponse
	8,  // 18: cards.v1.CardsService.ScanCard:output_type -> cards.v1.ScanCardResponse
	10, // 19: cards.v1.CardsService.GetContact:output_type -> cards.v1.GetContactResponse
	12, // 20: cards.v1.CardsService.ListContacts:output_type -> cards.v1.ListContactsResponse
	14, // 21: cards.v1.CardsService.ExportContacts:output_type -> cards.v1.ExportContactsResponse
	16, // 22: cards.v1.CardsService.DraftFollowUpEmail:output_type -> cards.v1.DraftFollowUpEmailResponse
	18, // 23: cards.v1.CreditsService.GetBalance:output_type -> cards.v1.GetBalanceResponse
	20, // 24: cards.v1.CreditsService.GrantCredits:output_type -> cards.v1.GrantCreditsResponse
	22, // 25: cards.v1.CreditsService.ListCreditEntries:output_type -> cards.v1.ListCreditEntriesResponse
	16, // [16:26] is the sub-list for method output_type
	6,  // [6:16] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_cards_v1_cards_proto_init() }
func file_cards_v1_cards_proto_init() {
	if File_cards_v1_cards_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_cards_v1_cards_proto_rawDesc), len(file_cards_v1_cards_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   23,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_cards_v1_cards_proto_goTypes,
		DependencyIndexes: file_cards_v1_cards_proto_depIdxs,
		MessageInfos:      file_cards_v1_cards_proto_msgTypes,
	}.Build()
	File_cards_v1_cards_proto = out.File
	file_cards_v1_cards_proto_goTypes = nil
	file_cards_v1_cards_proto_depIdxs = nil
}
