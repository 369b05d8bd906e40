// Copyright 2025 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package record

import "strconv"

// OptionRight is the side of an option contract, as encoded in requests and
// responses.
type OptionRight string

const (
	Call OptionRight = "C"
	Put  OptionRight = "P"
)

// Interval is a quote/price sampling interval in milliseconds, for the "ivl"
// request parameter.
type Interval int

const (
	Tick           Interval = 0
	Second         Interval = 1_000
	Minute         Interval = 60_000
	FiveMinutes    Interval = 300_000
	FifteenMinutes Interval = 900_000
)

// Param returns the "ivl" parameter value, in milliseconds.
func (i Interval) Param() string { return strconv.Itoa(int(i)) }

// TradingHours selects between regular trading hours and the full session,
// for the "rth" request parameter.
type TradingHours bool

const (
	RegularHours  TradingHours = true
	ExtendedHours TradingHours = false
)

// Param returns the "rth" parameter value.
func (h TradingHours) Param() string {
	if h == RegularHours {
		return "true"
	}
	return "false"
}

// QuoteCondition is the condition code attached to the bid or ask side of a
// quote.
//
// https://http-docs.thetadata.us/Articles/Data-And-Requests/Values/Quote-Conditions
type QuoteCondition int

const (
	QuoteRegular            QuoteCondition = 0
	QuoteBidAskAutoExec     QuoteCondition = 1
	QuoteRotation           QuoteCondition = 2
	QuoteSpecialistAsk      QuoteCondition = 3
	QuoteSpecialistBid      QuoteCondition = 4
	QuoteLocked             QuoteCondition = 5
	QuoteFastMarket         QuoteCondition = 6
	QuoteSpecialistBidAsk   QuoteCondition = 7
	QuoteOneSide            QuoteCondition = 8
	QuoteOpening            QuoteCondition = 9
	QuoteClosing            QuoteCondition = 10
	QuoteMarketMakerClosed  QuoteCondition = 11
	QuoteDepthOnAsk         QuoteCondition = 12
	QuoteDepthOnBid         QuoteCondition = 13
	QuoteDepthOnBidAsk      QuoteCondition = 14
	QuoteTier3              QuoteCondition = 15
	QuoteCrossed            QuoteCondition = 16
	QuoteHalted             QuoteCondition = 17
	QuoteOperationalHalt    QuoteCondition = 18
	QuoteNews               QuoteCondition = 19
	QuoteNewsPending        QuoteCondition = 20
	QuoteNonFirm            QuoteCondition = 21
	QuoteDueToRelated       QuoteCondition = 22
	QuoteResume             QuoteCondition = 23
	QuoteNoMarketMakers     QuoteCondition = 24
	QuoteOrderImbalance     QuoteCondition = 25
	QuoteOrderInflux        QuoteCondition = 26
	QuoteIndicated          QuoteCondition = 27
	QuotePreOpen            QuoteCondition = 28
	QuoteInViewOfCommon     QuoteCondition = 29
	QuoteRelatedNewsPending QuoteCondition = 30
	QuoteRelatedNewsOut     QuoteCondition = 31
	QuoteAdditionalInfo     QuoteCondition = 32
	QuoteRelatedAddlInfo    QuoteCondition = 33
	QuoteNoOpenResume       QuoteCondition = 34
	QuoteDeleted            QuoteCondition = 35
	QuoteRegulatoryHalt     QuoteCondition = 36
	QuoteSECSuspension      QuoteCondition = 37
	QuoteNonCompliance      QuoteCondition = 38
	QuoteFilingsNotCurrent  QuoteCondition = 39
	QuoteCATSHalted         QuoteCondition = 40
	QuoteCATS               QuoteCondition = 41
	QuoteExDivOrSplit       QuoteCondition = 42
	QuoteUnassigned         QuoteCondition = 43
	QuoteInsideOpen         QuoteCondition = 44
	QuoteInsideClosed       QuoteCondition = 45
	QuoteOfferWanted        QuoteCondition = 46
	QuoteBidWanted          QuoteCondition = 47
	QuoteCash               QuoteCondition = 48
	QuoteInactive           QuoteCondition = 49
	QuoteNationalBBO        QuoteCondition = 50
	QuoteNominal            QuoteCondition = 51
	QuoteCabinet            QuoteCondition = 52
	QuoteNominalCabinet     QuoteCondition = 53
	QuoteBlankPrice         QuoteCondition = 54
	QuoteSlowBidAsk         QuoteCondition = 55
	QuoteSlowList           QuoteCondition = 56
	QuoteSlowBid            QuoteCondition = 57
	QuoteSlowAsk            QuoteCondition = 58
	QuoteBidOfferWanted     QuoteCondition = 59
	QuoteSubPenny           QuoteCondition = 60
	QuoteNonBBO             QuoteCondition = 61
	QuoteSpecialOpen        QuoteCondition = 62
	QuoteBenchmark          QuoteCondition = 63
	QuoteImplied            QuoteCondition = 64
	QuoteExchangeBest       QuoteCondition = 65
	QuoteMktWideHalt1       QuoteCondition = 66
	QuoteMktWideHalt2       QuoteCondition = 67
	QuoteMktWideHalt3       QuoteCondition = 68
	QuoteOnDemandAuction    QuoteCondition = 69
	QuoteNonFirmBid         QuoteCondition = 70
	QuoteNonFirmAsk         QuoteCondition = 71
	QuoteRetailBid          QuoteCondition = 72
	QuoteRetailAsk          QuoteCondition = 73
	QuoteRetailQte          QuoteCondition = 74
)

// Exchange is the market center code used in quote and trade responses.
type Exchange int

const (
	NQEX     Exchange = 1
	NQAD     Exchange = 2
	NYSE     Exchange = 3
	AMEX     Exchange = 4
	CBOE     Exchange = 5
	ISEX     Exchange = 6
	PACF     Exchange = 7
	CINC     Exchange = 8
	PHIL     Exchange = 9
	OPRA     Exchange = 10
	BOST     Exchange = 11
	NQNM     Exchange = 12
	NQSC     Exchange = 13
	NQBB     Exchange = 14
	NQPK     Exchange = 15
	NQIX     Exchange = 16
	CHIC     Exchange = 17
	TSE      Exchange = 18
	CDNX     Exchange = 19
	CME      Exchange = 20
	NYBT     Exchange = 21
	MRCY     Exchange = 22
	COMX     Exchange = 23
	CBOT     Exchange = 24
	NYMX     Exchange = 25
	KCBT     Exchange = 26
	MGEX     Exchange = 27
	NYBO     Exchange = 28
	NQBS     Exchange = 29
	DOWJ     Exchange = 30
	GEMI     Exchange = 31
	SIMX     Exchange = 32
	FTSE     Exchange = 33
	EURX     Exchange = 34
	IMPL     Exchange = 35
	DTN      Exchange = 36
	LMT      Exchange = 37
	LME      Exchange = 38
	IPEX     Exchange = 39
	NQMF     Exchange = 40
	FCEC     Exchange = 41
	C2       Exchange = 42
	MIAX     Exchange = 43
	CLRP     Exchange = 44
	BARK     Exchange = 45
	EMLD     Exchange = 46
	NQBX     Exchange = 47
	HOTS     Exchange = 48
	EUUS     Exchange = 49
	EUEU     Exchange = 50
	ENCM     Exchange = 51
	ENID     Exchange = 52
	ENIR     Exchange = 53
	CFE      Exchange = 54
	PBOT     Exchange = 55
	CMEFloor Exchange = 56
	NQNX     Exchange = 57
	BTRF     Exchange = 58
	NTRF     Exchange = 59
	BATS     Exchange = 60
	FCBT     Exchange = 61
	PINK     Exchange = 62
	BATY     Exchange = 63
	EDGE     Exchange = 64
	EDGX     Exchange = 65
	RUSL     Exchange = 66
	CMEX     Exchange = 67
	IEX      Exchange = 68
	PERL     Exchange = 69
	LSE      Exchange = 70
	GIF      Exchange = 71
	TSIX     Exchange = 72
	MEMX     Exchange = 73
	LTSE     Exchange = 75
)

var exchangeNames = map[Exchange]string{
	NQEX:     "Nasdaq Exchange",
	NQAD:     "Nasdaq Alternative Display Facility",
	NYSE:     "New York Stock Exchange",
	AMEX:     "American Stock Exchange",
	CBOE:     "Chicago Board Options Exchange",
	ISEX:     "International Securities Exchange",
	PACF:     "NYSE ARCA (Pacific)",
	CINC:     "National Stock Exchange (Cincinnati)",
	PHIL:     "Philadelphia Stock Exchange",
	OPRA:     "Options Pricing Reporting Authority",
	BOST:     "Boston Stock/Options Exchange",
	NQNM:     "Nasdaq Global+Select Market (NMS)",
	NQSC:     "Nasdaq Capital Market (SmallCap)",
	NQBB:     "Nasdaq Bulletin Board",
	NQPK:     "Nasdaq OTC",
	NQIX:     "Nasdaq Indexes (GIDS)",
	CHIC:     "Chicago Stock Exchange",
	TSE:      "Toronto Stock Exchange",
	CDNX:     "Canadian Venture Exchange",
	CME:      "Chicago Mercantile Exchange",
	NYBT:     "New York Board of Trade",
	MRCY:     "ISE Mercury",
	COMX:     "COMEX (division of NYMEX)",
	CBOT:     "Chicago Board of Trade",
	NYMX:     "New York Mercantile Exchange",
	KCBT:     "Kansas City Board of Trade",
	MGEX:     "Minneapolis Grain Exchange",
	NYBO:     "NYSE/ARCA Bonds",
	NQBS:     "Nasdaq Basic",
	DOWJ:     "Dow Jones Indices",
	GEMI:     "ISE Gemini",
	SIMX:     "Singapore International Monetary Exchange",
	FTSE:     "London Stock Exchange",
	EURX:     "Eurex",
	IMPL:     "Implied Price",
	DTN:      "Data Transmission Network",
	LMT:      "London Metals Exchange Matched Trades",
	LME:      "London Metals Exchange",
	IPEX:     "Intercontinental Exchange (IPE)",
	NQMF:     "Nasdaq Mutual Funds (MFDS)",
	FCEC:     "COMEX Clearport",
	C2:       "CBOE C2 Option Exchange",
	MIAX:     "Miami Exchange",
	CLRP:     "NYMEX Clearport",
	BARK:     "Barclays",
	EMLD:     "Miami Emerald Options Exchange",
	NQBX:     "NASDAQ Boston",
	HOTS:     "HotSpot Eurex US",
	EUUS:     "Eurex US",
	EUEU:     "Eurex EU",
	ENCM:     "Euronext Commodities",
	ENID:     "Euronext Index Derivatives",
	ENIR:     "Euronext Interest Rates",
	CFE:      "CBOE Futures Exchange",
	PBOT:     "Philadelphia Board of Trade",
	CMEFloor: "CME Floor",
	NQNX:     "FINRA/NASDAQ Trade Reporting Facility",
	BTRF:     "BSE Trade Reporting Facility",
	NTRF:     "NYSE Trade Reporting Facility",
	BATS:     "BATS Trading",
	FCBT:     "CBOT Floor",
	PINK:     "Pink Sheets",
	BATY:     "BATS Y Exchange",
	EDGE:     "Direct Edge A",
	EDGX:     "Direct Edge X",
	RUSL:     "Russell Indexes",
	CMEX:     "CME Indexes",
	IEX:      "Investors Exchange",
	PERL:     "Miami Pearl Options Exchange",
	LSE:      "London Stock Exchange",
	GIF:      "NYSE Global Index Feed",
	TSIX:     "TSX Indexes",
	MEMX:     "Members Exchange",
	LTSE:     "Long-Term Stock Exchange",
}

// Description returns the human-readable market center name, or "" for an
// unknown code.
func (e Exchange) Description() string {
	return exchangeNames[e]
}

// TradeCondition is the sale condition code attached to a trade. The code
// 255 in a response means "no condition" and is dropped by the parsers.
type TradeCondition int

// NoTradeCondition is the wire value for an absent condition field.
const NoTradeCondition TradeCondition = 255

const (
	TradeRegular                TradeCondition = 0
	TradeFormT                  TradeCondition = 1
	TradeOutOfSeq               TradeCondition = 2
	TradeAvgPrcNasdaq           TradeCondition = 4
	TradeOpenReportLate         TradeCondition = 5
	TradeOpenReportOutOfSeq     TradeCondition = 6
	TradeOpenReportInSeq        TradeCondition = 7
	TradePriorReferencePrice    TradeCondition = 8
	TradeNextDaySale            TradeCondition = 9
	TradeBunched                TradeCondition = 10
	TradeCashSale               TradeCondition = 11
	TradeSeller                 TradeCondition = 12
	TradeSoldLast               TradeCondition = 13
	TradeRule127                TradeCondition = 14
	TradeBunchedSold            TradeCondition = 15
	TradeNonBoardLot            TradeCondition = 16
	TradePosit                  TradeCondition = 17
	TradeAutoExecution          TradeCondition = 18
	TradeHalt                   TradeCondition = 19
	TradeDelayed                TradeCondition = 20
	TradeReopen                 TradeCondition = 21
	TradeAcquisition            TradeCondition = 22
	TradeBurstBasket            TradeCondition = 25
	TradeOpenDetail             TradeCondition = 26
	TradeIntraDetail            TradeCondition = 27
	TradeBasketOnClose          TradeCondition = 28
	TradeRule155                TradeCondition = 29
	TradeDistribution           TradeCondition = 30
	TradeSplit                  TradeCondition = 31
	TradeRegularSettle          TradeCondition = 32
	TradeCustomBasketCross      TradeCondition = 33
	TradeAdjTerms               TradeCondition = 34
	TradeSpread                 TradeCondition = 35
	TradeStraddle               TradeCondition = 36
	TradeBuyWrite               TradeCondition = 37
	TradeCombo                  TradeCondition = 38
	TradeStpd                   TradeCondition = 39
	TradeCanc                   TradeCondition = 40
	TradeCancLast               TradeCondition = 41
	TradeCancOpen               TradeCondition = 42
	TradeCancOnly               TradeCondition = 43
	TradeCancStpd               TradeCondition = 44
	TradeMatchCross             TradeCondition = 45
	TradeFastMarket             TradeCondition = 46
	TradeNominal                TradeCondition = 47
	TradeCabinet                TradeCondition = 48
	TradeBlankPrice             TradeCondition = 49
	TradeNotSpecified           TradeCondition = 50
	TradeMCOfficialClose        TradeCondition = 51
	TradeSpecialTerms           TradeCondition = 52
	TradeContingentOrder        TradeCondition = 53
	TradeInternalCross          TradeCondition = 54
	TradeStoppedRegular         TradeCondition = 55
	TradeStoppedSoldLast        TradeCondition = 56
	TradeBasis                  TradeCondition = 58
	TradeVWAP                   TradeCondition = 59
	TradeSpecialSession         TradeCondition = 60
	TradeNanexAdmin             TradeCondition = 61
	TradeOpenReport             TradeCondition = 62
	TradeMarketOnClose          TradeCondition = 63
	TradeSettlePrice            TradeCondition = 64
	TradeOutOfSeqPreMkt         TradeCondition = 65
	TradeMCOfficialOpen         TradeCondition = 66
	TradeFuturesSpread          TradeCondition = 67
	TradeOpenRange              TradeCondition = 68
	TradeCloseRange             TradeCondition = 69
	TradeNominalCabinet         TradeCondition = 70
	TradeChangingTrans          TradeCondition = 71
	TradeChangingTransCab       TradeCondition = 72
	TradeNominalUpdate          TradeCondition = 73
	TradePitSettlement          TradeCondition = 74
	TradeBlockTrade             TradeCondition = 75
	TradeExgForPhysical         TradeCondition = 76
	TradeVolumeAdjustment       TradeCondition = 77
	TradeVolatilityTrade        TradeCondition = 78
	TradeYellowFlag             TradeCondition = 79
	TradeFloorPrice             TradeCondition = 80
	TradeOfficialPrice          TradeCondition = 81
	TradeUnofficialPrice        TradeCondition = 82
	TradeMidBidAskPrice         TradeCondition = 83
	TradeEndSessionHigh         TradeCondition = 84
	TradeEndSessionLow          TradeCondition = 85
	TradeBackwardation          TradeCondition = 86
	TradeContango               TradeCondition = 87
	TradeHoliday                TradeCondition = 88
	TradePreOpening             TradeCondition = 89
	TradePostFull               TradeCondition = 90
	TradePostRestricted         TradeCondition = 91
	TradeClosingAuction         TradeCondition = 92
	TradeBatch                  TradeCondition = 93
	TradeTrading                TradeCondition = 94
	TradeIntermarketSweep       TradeCondition = 95
	TradeDerivative             TradeCondition = 96
	TradeReopening              TradeCondition = 97
	TradeClosing                TradeCondition = 98
	TradeCapElection            TradeCondition = 99
	TradeSpotSettlement         TradeCondition = 100
	TradeBasisHigh              TradeCondition = 101
	TradeBasisLow               TradeCondition = 102
	TradeYield                  TradeCondition = 103
	TradePriceVariation         TradeCondition = 104
	TradeContingentTrade        TradeCondition = 105
	TradeStoppedIM              TradeCondition = 106
	TradeBenchmark              TradeCondition = 107
	TradeThruExempt             TradeCondition = 108
	TradeImplied                TradeCondition = 109
	TradeOTC                    TradeCondition = 110
	TradeMktSupervision         TradeCondition = 111
	TradeContingentUTP          TradeCondition = 114
	TradeOddLot                 TradeCondition = 115
	TradeCorrectedCSLast        TradeCondition = 117
	TradeOPRAExtHours           TradeCondition = 118
	TradeQualifiedContingent    TradeCondition = 124
	TradeSingleLegAuctionNonISO TradeCondition = 125
	TradeSingleLegAuctionISO    TradeCondition = 126
	TradeSingleLegCrossNonISO   TradeCondition = 127
	TradeSingleLegCrossISO      TradeCondition = 128
	TradeSingleLegFloorTrade    TradeCondition = 129
	TradeMultiLegAutoElec       TradeCondition = 130
	TradeMultiLegAuction        TradeCondition = 131
	TradeMultiLegCross          TradeCondition = 132
	TradeMultiLegFloorTrade     TradeCondition = 133
	TradeMLAutoElecAgainstLeg   TradeCondition = 134
	TradeStockOptionsAuction    TradeCondition = 135
	TradeMLAuctionAgainstLeg    TradeCondition = 136
	TradeMLFloorTradeAgainstLeg TradeCondition = 137
	TradeStkOptAutoElec         TradeCondition = 138
	TradeStockOptionsCross      TradeCondition = 139
	TradeStockOptionsFloor      TradeCondition = 140
	TradeStkOptAutoElecAgstLeg  TradeCondition = 141
	TradeStkOptAuctionAgstLeg   TradeCondition = 142
	TradeStkOptFloorAgstLeg     TradeCondition = 143
	TradeMLFloorTradeOfPP       TradeCondition = 144
	TradeBidAggressor           TradeCondition = 145
	TradeAskAggressor           TradeCondition = 146
	TradeMultilatCompTrPDP      TradeCondition = 147
	TradeExtendedHours          TradeCondition = 148
)
