package tracker

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/ethereum/go-ethereum/common"

	"github.com/andy-marketplace/goapi/base/abi"
	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	pricefomatter "github.com/andy-marketplace/goapi/base/price_fomatter"
	"github.com/andy-marketplace/goapi/domain"
)

type SaleNotifierConfig struct {
	ChainId          domain.ChainId
	DiscordBotKey    string
	DiscordChannelId string
	// SiteUrl prefixes the item links, e.g. https://market.example
	SiteUrl string
}

// ChannelMessenger is the part of discordgo.Session the notifier uses
type ChannelMessenger interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type saleNotifierHandler struct {
	config  SaleNotifierConfig
	discord ChannelMessenger
}

func NewSaleNotifierHandler(config SaleNotifierConfig) (EventHandler, error) {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", config.DiscordBotKey))
	if err != nil {
		return nil, err
	}
	return newSaleNotifierHandler(config, discord), nil
}

func newSaleNotifierHandler(config SaleNotifierConfig, discord ChannelMessenger) EventHandler {
	return &saleNotifierHandler{config, discord}
}

func (h *saleNotifierHandler) GetFilterTopics() [][]common.Hash {
	return [][]common.Hash{
		{itemBoughtSig, auctionEndedSig},
	}
}

// ProcessEvents posts one message per sale. Discord failures are logged and skipped.
func (h *saleNotifierHandler) ProcessEvents(c ctx.Ctx, logs []logWithBlockTime) error {
	for _, l := range logs {
		var msg *discordgo.MessageEmbed
		switch l.Topics[0] {
		case itemBoughtSig:
			evt, err := abi.ToItemBoughtLog(&l.Log)
			if err != nil {
				c.WithField("err", err).Error("failed to parse ItemBought log")
				return err
			}
			msg = h.itemBoughtMessage(evt)
		case auctionEndedSig:
			evt, err := abi.ToAuctionEndedLog(&l.Log)
			if err != nil {
				c.WithField("err", err).Error("failed to parse AuctionEnded log")
				return err
			}
			msg = h.auctionEndedMessage(evt)
		default:
			continue
		}

		if _, err := h.discord.ChannelMessageSendEmbed(h.config.DiscordChannelId, msg); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"txHash": l.TxHash,
			}).Warn("discord.ChannelMessageSendEmbed failed")
		}
	}
	return nil
}

func (h *saleNotifierHandler) itemUrl(nftAddress common.Address, tokenId *big.Int) string {
	return fmt.Sprintf("%s/nft/%s/%s", strings.TrimRight(h.config.SiteUrl, "/"), lowerHex(nftAddress), tokenId)
}

func (h *saleNotifierHandler) itemBoughtMessage(evt *abi.ItemBoughtLog) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Seller", Value: lowerHex(evt.Seller)},
		{Name: "Buyer", Value: lowerHex(evt.Buyer)},
		{Name: "Chain", Value: h.config.ChainId.Name()},
		{Name: "Price", Value: fmt.Sprintf("%s ETH", pricefomatter.FormatEther(evt.Price))},
	}
	if evt.RoyaltyAmount != nil && evt.RoyaltyAmount.Sign() > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Royalty",
			Value: fmt.Sprintf("%s ETH to %s", pricefomatter.FormatEther(evt.RoyaltyAmount), lowerHex(evt.RoyaltyReceiver)),
		})
	}
	return &discordgo.MessageEmbed{
		Title:       "Item sold!",
		Description: h.itemUrl(evt.NftAddress, evt.TokenId),
		Fields:      fields,
	}
}

func (h *saleNotifierHandler) auctionEndedMessage(evt *abi.AuctionEndedLog) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Auction ended!",
		Description: h.itemUrl(evt.NftAddress, evt.TokenId),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Seller", Value: lowerHex(evt.Seller)},
			{Name: "Winner", Value: lowerHex(evt.Winner)},
			{Name: "Chain", Value: h.config.ChainId.Name()},
			{Name: "Price", Value: fmt.Sprintf("%s ETH", pricefomatter.FormatEther(evt.Amount))},
		},
	}
}
