package taxrate

import "errors"

// staticDataset is a Dataset backed by in-memory schedules. Both the
// built-in tables and parsed rates files use it.
type staticDataset struct {
	year       int
	federal    Schedule
	provincial map[string]Schedule
}

func (d *staticDataset) Year() int { return d.year }

func (d *staticDataset) Federal() (Schedule, error) {
	if len(d.federal) == 0 {
		return nil, &FetchError{Code: FederalCode, Err: errors.New("no federal schedule in dataset")}
	}
	return d.federal, nil
}

func (d *staticDataset) Provincial(code string) (Schedule, error) {
	if _, ok := jurisdictionNames[code]; !ok || code == FederalCode {
		return nil, &FetchError{Code: code, Err: ErrUnknownJurisdiction}
	}
	sched, ok := d.provincial[code]
	if !ok {
		return nil, &FetchError{Code: code, Err: errors.New("no schedule in dataset")}
	}
	return sched, nil
}

// Rates2025 returns the built-in dataset for the 2025 tax year.
func Rates2025() Dataset { return rates2025 }

var rates2025 = &staticDataset{
	year: 2025,
	federal: Schedule{
		{15, UpTo(57375)},
		{20.5, UpTo(114750)},
		{26, UpTo(177882)},
		{29, UpTo(253414)},
		{33, NoLimit()},
	},
	provincial: map[string]Schedule{
		"AB": {
			{8, UpTo(60000)},
			{10, UpTo(151234)},
			{12, UpTo(181481)},
			{13, UpTo(241974)},
			{14, UpTo(302466)},
			{15, NoLimit()},
		},
		"BC": {
			{5.06, UpTo(49279)},
			{7.7, UpTo(98560)},
			{10.5, UpTo(113158)},
			{12.29, UpTo(137407)},
			{14.7, UpTo(186306)},
			{16.8, UpTo(259829)},
			{20.5, NoLimit()},
		},
		"MB": {
			{10.8, UpTo(47564)},
			{12.75, UpTo(101200)},
			{17.4, NoLimit()},
		},
		"NB": {
			{9.4, UpTo(51306)},
			{14, UpTo(102614)},
			{16, UpTo(190060)},
			{19.5, NoLimit()},
		},
		"NL": {
			{8.7, UpTo(44192)},
			{14.5, UpTo(88382)},
			{15.8, UpTo(157792)},
			{17.8, UpTo(220910)},
			{19.8, UpTo(282214)},
			{20.8, UpTo(564429)},
			{21.3, UpTo(1128858)},
			{21.8, NoLimit()},
		},
		"NS": {
			{8.79, UpTo(30507)},
			{14.95, UpTo(61015)},
			{16.67, UpTo(95883)},
			{17.5, UpTo(154650)},
			{21, NoLimit()},
		},
		"NT": {
			{5.9, UpTo(51964)},
			{8.6, UpTo(103930)},
			{12.2, UpTo(168967)},
			{14.05, NoLimit()},
		},
		"NU": {
			{4, UpTo(54707)},
			{7, UpTo(109413)},
			{9, UpTo(177881)},
			{11.5, NoLimit()},
		},
		"ON": {
			{5.05, UpTo(52886)},
			{9.15, UpTo(105775)},
			{11.16, UpTo(150000)},
			{12.16, UpTo(220000)},
			{13.16, NoLimit()},
		},
		"PE": {
			{9.5, UpTo(33328)},
			{13.47, UpTo(64656)},
			{16.6, UpTo(105000)},
			{17.62, UpTo(140000)},
			{19, NoLimit()},
		},
		"QC": {
			{14, UpTo(53255)},
			{19, UpTo(106495)},
			{24, UpTo(129590)},
			{25.75, NoLimit()},
		},
		"SK": {
			{10.5, UpTo(53463)},
			{12.5, UpTo(152750)},
			{14.5, NoLimit()},
		},
		"YT": {
			{6.4, UpTo(57375)},
			{9, UpTo(114750)},
			{10.9, UpTo(177882)},
			{12.8, UpTo(500000)},
			{15, NoLimit()},
		},
	},
}
