// Watchlog - Personal Media Watching Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchlog

package gateway

import "fmt"

// FieldDelimiter separates the three fields of a metadata answer.
const FieldDelimiter = "|||"

const metadataPromptTemplate = `あなたは映像作品情報のエキスパートです。以下の映像作品のタイトルについて、指定された形式で情報を教えてください。

作品タイトル: %s

以下の3つの情報を、必ず区切り文字「|||」で区切って出力してください。
1. 視聴時間の概要（例: 全12話、各話約24分 / 映画 124分）
2. シリーズ全体の総視聴時間（分単位の整数のみ。例: 288）
3. 一般的な評価や評判の概要（200文字程度）

出力形式の例:
全28話、1話約24分|||672|||非常に高い評価を受けており、多くのレビューサイトで満点に近いスコアを記録しています。特に、感動的なストーリーとキャラクターの深い心理描写が称賛されています。
`

// MetadataPrompt asks for viewing time, total minutes and reputation of title.
func MetadataPrompt(title string) string {
	return fmt.Sprintf(metadataPromptTemplate, title)
}
