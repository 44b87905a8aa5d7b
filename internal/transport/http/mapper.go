package http

import (
	"encoding/json"

	"github.com/PuntiNugget/Simple-app/internal/core"
	"github.com/PuntiNugget/Simple-app/internal/proto"
)

// inboundToCommand maps a wire envelope to a core command. Unknown types and
// payloads that do not parse as the expected structure return ok=false; the
// caller drops them without a reply.
func inboundToCommand(inbound proto.Inbound) (core.Command, bool) {
	switch inbound.Type {
	case proto.InboundTypeSetName:
		var data proto.SetNameData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return core.Command{}, false
		}
		return core.Command{Kind: core.CommandSetName, Name: data.Name}, true
	case proto.InboundTypeMessage:
		var data proto.MessageData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return core.Command{}, false
		}
		return core.Command{Kind: core.CommandSendMessage, Text: data.Text}, true
	case proto.InboundTypeAdminLogin:
		var data proto.AdminLoginData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return core.Command{}, false
		}
		return core.Command{Kind: core.CommandAdminLogin, Password: data.Password}, true
	case proto.InboundTypeAdminBroadcast:
		var data proto.BroadcastData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return core.Command{}, false
		}
		return core.Command{Kind: core.CommandAdminBroadcast, Text: data.Text}, true
	case proto.InboundTypeAdminWarn, proto.InboundTypeAdminMute,
		proto.InboundTypeAdminBan, proto.InboundTypeAdminUnban:
		var data proto.TargetData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return core.Command{}, false
		}
		return core.Command{Kind: targetKind(inbound.Type), Name: data.Name}, true
	case proto.InboundTypeAdminAddWord, proto.InboundTypeAdminRemoveWord:
		var data proto.WordData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return core.Command{}, false
		}
		kind := core.CommandAdminAddWord
		if inbound.Type == proto.InboundTypeAdminRemoveWord {
			kind = core.CommandAdminRemoveWord
		}
		return core.Command{Kind: kind, Word: data.Word}, true
	default:
		return core.Command{}, false
	}
}

func targetKind(inboundType string) core.CommandKind {
	switch inboundType {
	case proto.InboundTypeAdminWarn:
		return core.CommandAdminWarn
	case proto.InboundTypeAdminMute:
		return core.CommandAdminMute
	case proto.InboundTypeAdminBan:
		return core.CommandAdminBan
	default:
		return core.CommandAdminUnban
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventJoinSuccess:
		return proto.Outbound{Type: proto.OutboundTypeJoinSuccess, Data: proto.NoticeData{Text: event.Text}}
	case core.EventJoinError:
		return proto.Outbound{Type: proto.OutboundTypeJoinError, Data: proto.NoticeData{Text: event.Text}}
	case core.EventBanned:
		return proto.Outbound{Type: proto.OutboundTypeBanned, Data: proto.BannedData{Link: event.Link}}
	case core.EventSystem:
		return proto.Outbound{Type: proto.OutboundTypeSystem, Data: proto.NoticeData{Text: event.Text}}
	case core.EventChatMessage:
		return proto.Outbound{Type: proto.OutboundTypeMessage, Data: proto.ChatMessageData{Name: event.Name, Text: event.Text}}
	case core.EventAdminSuccess:
		return proto.Outbound{Type: proto.OutboundTypeAdminSuccess}
	case core.EventBannedWordList:
		return proto.Outbound{Type: proto.OutboundTypeBannedWordList, Data: proto.WordListData{Words: event.List}}
	case core.EventBannedUserList:
		return proto.Outbound{Type: proto.OutboundTypeBannedUserList, Data: proto.UserListData{Users: event.List}}
	case core.EventUserList:
		return proto.Outbound{Type: proto.OutboundTypeUserList, Data: proto.UserListData{Users: event.List}}
	default:
		return proto.Outbound{Type: proto.OutboundTypeSystem, Data: proto.NoticeData{Text: event.Text}}
	}
}
