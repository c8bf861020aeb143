// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: promos/v1/promos.proto

package promospb

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

type Market struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Handle        string                 `protobuf:"bytes,2,opt,name=handle,proto3" json:"handle,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Location      string                 `protobuf:"bytes,4,opt,name=location,proto3" json:"location,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Market) Reset() {
	*x = Market{}
	mi := &file_promos_v1_promos_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Market) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Market) ProtoMessage() {}

func (x *Market) ProtoReflect() protoreflect.Message {
	mi := &file_promos_v1_promos_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Market.ProtoReflect.Descriptor instead.
func (*Market) Descriptor() ([]byte, []int) {
	return file_promos_v1_promos_proto_rawDescGZIP(), []int{0}
}

func (x *Market) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Market) GetHandle() string {
	if x != nil {
		return x.Handle
	}
	return ""
}

func (x *Market) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Market) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *Market) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Market) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Promotion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	MarketId      string                 `protobuf:"bytes,2,opt,name=market_id,json=marketId,proto3" json:"market_id,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	StartDate     string                 `protobuf:"bytes,4,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"` // YYYY-MM-DD, inclusive
	EndDate       string                 `protobuf:"bytes,5,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`       // YYYY-MM-DD, inclusive
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Promotion) Reset() {
	*x = Promotion{}
	mi := &file_promos_v1_promos_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Promotion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Promotion) ProtoMessage() {}

func (x *Promotion) ProtoReflect() protoreflect.Message {
	mi := &file_promos_v1_promos_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Promotion.ProtoReflect.Descriptor instead.
func (*Promotion) Descriptor() ([]byte, []int) {
	return file_promos_v1_promos_proto_rawDescGZIP(), []int{1}
}

func (x *Promotion) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Promotion) GetMarketId() string {
	if x != nil {
		return x.MarketId
	}
	return ""
}

func (x *Promotion) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Promotion) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *Promotion) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *Promotion) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateMarketRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Handle        string                 `protobuf:"bytes,1,opt,name=handle,proto3" json:"handle,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Location      string                 `protobuf:"bytes,3,opt,name=location,proto3" json:"location,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateMarketRequest) Reset() {
	*x = CreateMarketRequest{}
	mi := &file_promos_v1_promos_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMarketRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMarketRequest) ProtoMessage() {}

func (x *CreateMarketRequest) ProtoReflect() protoreflect.Message {
	mi := &file_promos_v1_promos_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMarketRequest.ProtoReflect.Descriptor instead.
func (*CreateMarketRequest) Descriptor() ([]byte, []int) {
	return file_promos_v1_promos_proto_rawDescGZIP(), []int{2}
}

func (x *CreateMarketRequest) GetHandle() string {
	if x != nil {
		return x.Handle
	}
	return ""
}

func (x *CreateMarketRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateMarketRequest) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

type CreateMarketResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Market        *Market                `protobuf:"bytes,1,opt,name=market,proto3" json:"market,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateMarketResponse) Reset() {
	*x = CreateMarketResponse{}
	mi := &file_promos_v1_promos_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMarketResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMarketResponse) ProtoMessage() {}

func (x *CreateMarketResponse) ProtoReflect() protoreflect.Message {
	mi := &file_promos_v1_promos_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMarketResponse.ProtoReflect.Descriptor instead.
func (*CreateMarketResponse) Descriptor() ([]byte, []int) {
	return file_promos_v1_promos_proto_rawDescGZIP(), []int{3}
}

func (x *CreateMarketResponse) GetMarket() *Market {
	if x != nil {
		return x.Market
	}
	return nil
}

type ListMarketsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMarketsRequest) Reset() {
	*x = ListMarketsRequest{}
	mi := &file_promos_v1_promos_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMarketsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMarketsRequest) ProtoMessage() {}

func (x *ListMarketsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_promos_v1_promos_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMarketsRequest.ProtoReflect.Descriptor instead.
func (*ListMarketsRequest) Descriptor() ([]byte, []int) {
	return file_promos_v1_promos_proto_rawDescGZIP(), []int{4}
}

type ListMarketsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Markets       []*Market              `protobuf:"bytes,1,rep,name=markets,proto3" json:"markets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMarketsResponse) Reset() {
	*x = ListMarketsResponse{}
	mi := &file_promos_v1_promos_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMarketsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMarketsResponse) ProtoMessage() {}

func (x *ListMarketsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_promos_v1_promos_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMarketsResponse.ProtoReflect.Descriptor instead.
func (*ListMarketsResponse) Descriptor() ([]byte, []int) {
	return file_promos_v1_promos_proto_rawDescGZIP(), []int{5}
}

func (x *ListMarketsResponse) GetMarkets() []*Market {
	if x != nil {
		return x.Markets
	}
	return nil
}

type ListPromotionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MarketId      string                 `protobuf:"bytes,1,opt,name=market_id,json=marketId,proto3" json:"market_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPromotionsRequest) Reset() {
	*x = ListPromotionsRequest{}
	mi := &file_promos_v1_promos_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPromotionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPromotionsRequest) ProtoMessage() {}

func (x *ListPromotionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_promos_v1_promos_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPromotionsRequest.ProtoReflect.Descriptor instead.
func (*ListPromotionsRequest) Descriptor() ([]byte, []int) {
	return file_promos_v1_promos_proto_rawDescGZIP(), []int{6}
}

func (x *ListPromotionsRequest) GetMarketId() string {
	if x != nil {
		return x.MarketId
	}
	return ""
}

func (x *ListPromotionsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListPromotionsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListPromotionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Promotions    []*Promotion           `protobuf:"bytes,1,rep,name=promotions,proto3" json:"promotions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPromotionsResponse) Reset() {
	*x = ListPromotionsResponse{}
	mi := &file_promos_v1_promos_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPromotionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPromotionsResponse) ProtoMessage() {}

func (x *ListPromotionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_promos_v1_promos_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPromotionsResponse.ProtoReflect.Descriptor instead.
func (*ListPromotionsResponse) Descriptor() ([]byte, []int) {
	return file_promos_v1_promos_proto_rawDescGZIP(), []int{7}
}

func (x *ListPromotionsResponse) GetPromotions() []*Promotion {
	if x != nil {
		return x.Promotions
	}
	return nil
}

var File_promos_v1_promos_proto protoreflect.FileDescriptor

const file_promos_v1_promos_proto_rawDesc = "" +
	"\n" +
	"\x16promos/v1/promos.proto\x12\tpromos.v1\"\x9e\x01\n" +
	"\x06Market\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06handle\x18\x02 \x01(\tR\x06handle\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1a\n" +
	"\blocation\x18\x04 \x01(\tR\blocation\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\xa7\x01\n" +
	"\tPromotion\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tmarket_id\x18\x02 \x01(\tR\bmarketId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x1d\n" +
	"\n" +
	"start_date\x18\x04 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x05 \x01(\tR\aendDate\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"]\n" +
	"\x13CreateMarketRequest\x12\x16\n" +
	"\x06handle\x18\x01 \x01(\tR\x06handle\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\blocation\x18\x03 \x01(\tR\blocation\"A\n" +
	"\x14CreateMarketResponse\x12)\n" +
	"\x06market\x18\x01 \x01(\v2\x11.promos.v1.MarketR\x06market\"\x14\n" +
	"\x12ListMarketsRequest\"B\n" +
	"\x13ListMarketsResponse\x12+\n" +
	"\amarkets\x18\x01 \x03(\v2\x11.promos.v1.MarketR\amarkets\"j\n" +
	"\x15ListPromotionsRequest\x12\x1b\n" +
	"\tmarket_id\x18\x01 \x01(\tR\bmarketId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"N\n" +
	"\x16ListPromotionsResponse\x124\n" +
	"\n" +
	"promotions\x18\x01 \x03(\v2\x14.promos.v1.PromotionR\n" +
	"promotions2\x85\x02\n" +
	"\rPromosService\x12O\n" +
	"\fCreateMarket\x12\x1e.promos.v1.CreateMarketRequest\x1a\x1f.promos.v1.CreateMarketResponse\x12L\n" +
	"\vListMarkets\x12\x1d.promos.v1.ListMarketsRequest\x1a\x1e.promos.v1.ListMarketsResponse\x12U\n" +
	"\x0eListPromotions\x12 .promos.v1.ListPromotionsRequest\x1a!.promos.v1.ListPromotionsResponseBBZ@github.com/promowatch/promo-tracker/gen/proto/promos/v1;promospbb\x06proto3"

var (
	file_promos_v1_promos_proto_rawDescOnce sync.Once
	file_promos_v1_promos_proto_rawDescData []byte
)

func file_promos_v1_promos_proto_rawDescGZIP() []byte {
	file_promos_v1_promos_proto_rawDescOnce.Do(func() {
		file_promos_v1_promos_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_promos_v1_promos_proto_rawDesc), len(file_promos_v1_promos_proto_rawDesc)))
	})
	return file_promos_v1_promos_proto_rawDescData
}

var file_promos_v1_promos_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_promos_v1_promos_proto_goTypes = []any{
	(*Market)(nil),                 // 0: promos.v1.Market
	(*Promotion)(nil),              // 1: promos.v1.Promotion
	(*CreateMarketRequest)(nil),    // 2: promos.v1.CreateMarketRequest
	(*CreateMarketResponse)(nil),   // 3: promos.v1.CreateMarketResponse
	(*ListMarketsRequest)(nil),     // 4: promos.v1.ListMarketsRequest
	(*ListMarketsResponse)(nil),    // 5: promos.v1.ListMarketsResponse
	(*ListPromotionsRequest)(nil),  // 6: promos.v1.ListPromotionsRequest
	(*ListPromotionsResponse)(nil), // 7: promos.v1.ListPromotionsResponse
}
var file_promos_v1_promos_proto_depIdxs = []int32{
	0, // 0: promos.v1.CreateMarketResponse.market:type_name -> promos.v1.Market
	0, // 1: promos.v1.ListMarketsResponse.markets:type_name -> promos.v1.Market
	1, // 2: promos.v1.ListPromotionsResponse.promotions:type_name -> promos.v1.Promotion
	2, // 3: promos.v1.PromosService.CreateMarket:input_type -> promos.v1.CreateMarketRequest
	4, // 4: promos.v1.PromosService.ListMarkets:input_type -> promos.v1.ListMarketsRequest
	6, // 5: promos.v1.PromosService.ListPromotions:input_type -> promos.v1.ListPromotionsRequest
	3, // 6: promos.v1.PromosService.CreateMarket:output_type -> promos.v1.CreateMarketResponse
	5, // 7: promos.v1.PromosService.ListMarkets:output_type -> promos.v1.ListMarketsResponse
	7, // 8: promos.v1.PromosService.ListPromotions:output_type -> promos.v1.ListPromotionsResponse
	6, // [6:9] is the sub-list for method output_type
	3, // [3:6] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_promos_v1_promos_proto_init() }
func file_promos_v1_promos_proto_init() {
	if File_promos_v1_promos_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_promos_v1_promos_proto_rawDesc), len(file_promos_v1_promos_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_promos_v1_promos_proto_goTypes,
		DependencyIndexes: file_promos_v1_promos_proto_depIdxs,
		MessageInfos:      file_promos_v1_promos_proto_msgTypes,
	}.Build()
	File_promos_v1_promos_proto = out.File
	file_promos_v1_promos_proto_goTypes = nil
	file_promos_v1_promos_proto_depIdxs = nil
}
