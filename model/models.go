package model

import (
	jsonIter "github.com/json-iterator/go"
)

var json = jsonIter.ConfigFastest

// Tables 全データベースモデル
var Tables = []interface{}{
	&Food{},
	&Order{},
	&KitchenStatus{},
	&Stats{},
}
