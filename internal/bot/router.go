// Package bot — router.go is the command grammar. Free text becomes one
// typed command via a fixed priority order: keyword commands first, then
// the lot-result shapes, then the device shapes, then "not understood".
// Keeping the shapes enumerated here makes the disambiguation rules
// testable in isolation.
package bot

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/revenue"
)

type cmdKind int

const (
	cmdUnknown cmdKind = iota
	cmdHelp
	cmdUndo
	cmdReport
	cmdPending
	cmdRevenue
	cmdInviteCreate
	cmdAdminSet
	cmdDeviceBuy
	cmdDeviceResolve
	cmdLotBuy
	cmdLotResult
)

// command is one parsed input. Only the fields of the matched shape are
// populated.
type command struct {
	kind    cmdKind
	channel string
	revKind string
	amount  int64
	name    string
	email   string
	wallet  string
	month   string
	code    string
	qty     int
	okCount int
	tach    int
	reward  *int64
}

// Keywords that never fall through to the device-purchase shape.
var reserved = map[string]bool{
	"start": true, "help": true, "undo": true, "baocao": true,
	"pending": true, "dabong": true, "db": true, "hopqua": true,
	"hq": true, "hh": true, "qr": true, "them": true, "chinh": true,
	"mua": true, "ok": true,
}

var (
	mayPattern      = regexp.MustCompile(`^(\d+)may$`)
	tachPattern     = regexp.MustCompile(`^tach(\d+)$`)
	compoundPattern = regexp.MustCompile(`^([a-z]+)(\d.*)$`)
	codePattern     = regexp.MustCompile(`^[a-z0-9]+$`)
)

// parseCommand tokenizes and matches one inbound text.
func parseCommand(text string) command {
	tokens := strings.Fields(strings.TrimSpace(text))
	if len(tokens) == 0 {
		return command{kind: cmdUnknown}
	}

	head := strings.ToLower(strings.TrimPrefix(tokens[0], "/"))
	args := tokens[1:]

	switch head {
	case "start", "help":
		return command{kind: cmdHelp}

	case "undo":
		return command{kind: cmdUndo}

	case "baocao":
		switch len(args) {
		case 0:
			return command{kind: cmdReport}
		case 1:
			return command{kind: cmdReport, month: args[0]}
		}

	case "pending":
		return command{kind: cmdPending}

	case "dabong", "db":
		if cmd, ok := revenueShape(revenue.ChannelDB, args); ok {
			return cmd
		}

	case "hopqua", "hq", "hh":
		if cmd, ok := channelShape(revenue.ChannelHQ, args); ok {
			return cmd
		}

	case "qr":
		if cmd, ok := channelShape(revenue.ChannelQR, args); ok {
			return cmd
		}

	case "them":
		if len(args) == 1 {
			if amount, err := common.ParseAmount(args[0]); err == nil {
				return command{kind: cmdRevenue, channel: revenue.ChannelOther,
					revKind: revenue.KindOtherIncome, amount: amount}
			}
		}

	case "chinh":
		if len(args) == 2 {
			if amount, err := common.ParseAmount(args[1]); err == nil {
				return command{kind: cmdAdminSet, wallet: strings.ToLower(args[0]), amount: amount}
			}
		}

	case "mua":
		if len(args) == 2 {
			qty, ok := parseMay(strings.ToLower(args[0]))
			amount, err := common.ParseAmount(args[1])
			if ok && err == nil {
				return command{kind: cmdLotBuy, qty: qty, amount: amount}
			}
		}
	}

	// A reserved keyword with a malformed remainder stops here: it never
	// doubles as a device code.
	if reserved[head] {
		return command{kind: cmdUnknown}
	}

	// Lot result: <N>may ...
	if qty, ok := parseMay(head); ok {
		return lotResultShape(qty, args)
	}

	// Device resolve: <code> ok <channel><amount>
	if len(args) == 2 && strings.EqualFold(args[0], "ok") && isCode(head) {
		if channel, amount, ok := parseChannelAmount(args[1]); ok {
			return command{kind: cmdDeviceResolve, code: head, channel: channel, amount: amount}
		}
		return command{kind: cmdUnknown}
	}

	// Device purchase: <code> <amount>
	if len(args) == 1 && isCode(head) {
		if amount, err := common.ParseAmount(args[0]); err == nil {
			return command{kind: cmdDeviceBuy, code: head, amount: amount}
		}
	}

	return command{kind: cmdUnknown}
}

// revenueShape matches the one-argument income form for a channel.
func revenueShape(channel string, args []string) (command, bool) {
	if len(args) != 1 {
		return command{}, false
	}
	amount, err := common.ParseAmount(args[0])
	if err != nil {
		return command{}, false
	}
	return command{kind: cmdRevenue, channel: channel,
		revKind: revenue.KindInviteReward, amount: amount}, true
}

// channelShape matches the hq/qr forms: one amount posts income, a
// name + email pair creates an invite. Money-parse decides which.
func channelShape(channel string, args []string) (command, bool) {
	if cmd, ok := revenueShape(channel, args); ok {
		return cmd, true
	}
	if len(args) == 2 {
		return command{kind: cmdInviteCreate, channel: channel,
			name: args[0], email: args[1]}, true
	}
	return command{}, false
}

// lotResultShape matches the two result forms after the <N>may token:
//
//	<channel><amount> tach<K>   (either order)  → ok = N−K, reward set
//	<hq|qr|db> ok tach<K>                       → ok = N, reward absent
func lotResultShape(qty int, args []string) command {
	switch len(args) {
	case 2:
		var comp string
		tach, found := -1, false
		for _, arg := range args {
			arg = strings.ToLower(arg)
			if k, ok := parseTach(arg); ok {
				if found {
					// two tach tokens is not a result
					return command{kind: cmdUnknown}
				}
				tach, found = k, true
				continue
			}
			comp = arg
		}
		if !found {
			return command{kind: cmdUnknown}
		}
		channel, amount, ok := parseChannelAmount(comp)
		if !ok {
			return command{kind: cmdUnknown}
		}
		reward := amount
		return command{kind: cmdLotResult, qty: qty, okCount: qty - tach,
			tach: tach, channel: channel, reward: &reward}

	case 3:
		var channel string
		tach, sawOK, found := -1, false, false
		for _, arg := range args {
			arg = strings.ToLower(arg)
			switch {
			case arg == "ok":
				sawOK = true
			case !found && isTach(arg):
				tach, _ = parseTach(arg)
				found = true
			default:
				channel = revenue.NormalizeChannel(arg)
			}
		}
		if !sawOK || !found {
			return command{kind: cmdUnknown}
		}
		switch channel {
		case revenue.ChannelHQ, revenue.ChannelQR, revenue.ChannelDB:
			return command{kind: cmdLotResult, qty: qty, okCount: qty,
				tach: tach, channel: channel}
		}
	}
	return command{kind: cmdUnknown}
}

// parseChannelAmount splits a compound token like "hopqua100k" into its
// normalized channel prefix and amount. Free-form channel labels pass
// through, so "tiktok800k" is valid too.
func parseChannelAmount(token string) (channel string, amount int64, ok bool) {
	m := compoundPattern.FindStringSubmatch(strings.ToLower(token))
	if m == nil {
		return "", 0, false
	}
	amount, err := common.ParseAmount(m[2])
	if err != nil {
		return "", 0, false
	}
	return revenue.NormalizeChannel(m[1]), amount, true
}

func parseMay(token string) (int, bool) {
	m := mayPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func parseTach(token string) (int, bool) {
	m := tachPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, false
	}
	k, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return k, true
}

func isTach(token string) bool {
	_, ok := parseTach(token)
	return ok
}

// isCode accepts an alphanumeric device code that is not a reserved
// keyword and not an <N>may token.
func isCode(token string) bool {
	if reserved[token] {
		return false
	}
	if _, ok := parseMay(token); ok {
		return false
	}
	return codePattern.MatchString(token)
}
