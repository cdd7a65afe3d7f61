package tracker

import (
	"errors"
	"math/big"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/base/abi"
	bCtx "github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
)

type fakeMessenger struct {
	channels []string
	embeds   []*discordgo.MessageEmbed
	err      error
}

func (f *fakeMessenger) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	f.channels = append(f.channels, channelID)
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{}, f.err
}

func itemBoughtLog(t *testing.T) types.Log {
	ev := abi.MarketplaceABI.Events["ItemBought"]
	data, err := ev.Inputs.NonIndexed().Pack(
		big.NewInt(15e17),
		common.HexToAddress("0x00000000000000000000000000000000000000a1"),
		big.NewInt(1700000000),
		big.NewInt(5e16),
		common.HexToAddress("0x00000000000000000000000000000000000000c1"),
	)
	require.NoError(t, err)
	return types.Log{
		Topics: []common.Hash{
			ev.ID,
			common.BytesToHash(common.HexToAddress("0x00000000000000000000000000000000000000b2").Bytes()),
			common.BytesToHash(common.HexToAddress("0x00000000000000000000000000000000000000bb").Bytes()),
			common.BigToHash(big.NewInt(9)),
		},
		Data: data,
	}
}

func TestSaleNotifier_itemBought(t *testing.T) {
	req := require.New(t)
	discord := &fakeMessenger{}
	h := newSaleNotifierHandler(SaleNotifierConfig{
		ChainId:          domain.ChainIdSepolia,
		DiscordChannelId: "sales",
		SiteUrl:          "https://market.example/",
	}, discord)

	req.NoError(h.ProcessEvents(bCtx.Background(), []logWithBlockTime{{Log: itemBoughtLog(t)}}))
	req.Equal([]string{"sales"}, discord.channels)
	embed := discord.embeds[0]
	req.Equal("Item sold!", embed.Title)
	req.Equal("https://market.example/nft/0x00000000000000000000000000000000000000bb/9", embed.Description)
	req.Equal("1.5 ETH", embed.Fields[3].Value)
	req.Len(embed.Fields, 5)
}

func TestSaleNotifier_discordFailureIsSkipped(t *testing.T) {
	req := require.New(t)
	discord := &fakeMessenger{err: errors.New("rate limited")}
	h := newSaleNotifierHandler(SaleNotifierConfig{DiscordChannelId: "sales"}, discord)

	req.NoError(h.ProcessEvents(bCtx.Background(), []logWithBlockTime{{Log: itemBoughtLog(t)}}))
	req.Len(discord.embeds, 1)
}

func TestSaleNotifier_filterTopics(t *testing.T) {
	h := newSaleNotifierHandler(SaleNotifierConfig{}, &fakeMessenger{})
	require.Equal(t, [][]common.Hash{{itemBoughtSig, auctionEndedSig}}, h.GetFilterTopics())
}
