// Package domain はprice featureのドメインエラーを定義します。
package domain

import "errors"

// ErrInsufficientData は絞り込み後のサンプル数が集計に足りない場合に返されます。
// 異常系ではなく「データ不足」表示に対応する正常な結果のひとつです。
var ErrInsufficientData = errors.New("not enough price samples")
