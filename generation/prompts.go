package generation

import (
	"fmt"
	"strings"
)

const (
	defaultChapterCount = 5
	defaultSlideCount   = 8
)

// BookRequest describes the book to generate. Topic or BookTitle must be
// set; ChapterCount falls back to a default when zero. Reference is
// optional free-form material the model should draw on.
type BookRequest struct {
	Topic        string `json:"topic"`
	BookTitle    string `json:"book_title"`
	ChapterCount int    `json:"chapter_count"`
	Reference    string `json:"reference"`
}

// SlideRequest describes the slide deck to generate.
type SlideRequest struct {
	Topic      string `json:"topic"`
	SlideCount int    `json:"slide_count"`
}

func buildBookPrompt(req BookRequest) string {
	title := req.BookTitle
	if title == "" {
		title = req.Topic
	}
	count := req.ChapterCount
	if count <= 0 {
		count = defaultChapterCount
	}

	var b strings.Builder
	b.WriteString("あなたはプロの著者・編集者です。\n")
	b.WriteString(fmt.Sprintf("以下のトピック/タイトルについて、%d章構成の電子書籍の内容を作成してください。\n\n", count))
	b.WriteString(fmt.Sprintf("タイトル/トピック: %s\n\n", title))
	if req.Reference != "" {
		b.WriteString(fmt.Sprintf("参考資料:\n%s\n\n", req.Reference))
	}
	b.WriteString("各章は以下のJSON形式で出力してください：\n")
	b.WriteString("[\n  {\n    \"title\": \"章のタイトル\",\n    \"content\": \"章の本文（HTML形式、最低1000文字以上）\"\n  }\n]\n\n")
	b.WriteString("ルール:\n")
	b.WriteString("1. 各章は独立した内容にし、読みやすく構成する\n")
	b.WriteString("2. 最初の章は導入・概要にする\n")
	b.WriteString("3. HTMLタグは<h2>、<h3>、<p>、<ul>、<li>、<strong>、<em>のみ使用\n")
	b.WriteString("4. 段落は必ず<p>タグで囲む\n")
	b.WriteString("5. JSON配列のみを出力し、説明文は含めない\n")
	return b.String()
}

func buildSlidePrompt(req SlideRequest) string {
	count := req.SlideCount
	if count <= 0 {
		count = defaultSlideCount
	}

	var b strings.Builder
	b.WriteString("あなたはプレゼンテーション作成の専門家です。\n")
	b.WriteString(fmt.Sprintf("以下のトピックについて、%d枚構成のスライド資料を作成してください。\n\n", count))
	b.WriteString(fmt.Sprintf("トピック: %s\n\n", req.Topic))
	b.WriteString("各スライドは以下のJSON形式で出力してください：\n")
	b.WriteString("[\n  {\n    \"title\": \"スライドのタイトル\",\n    \"bullets\": [\"要点1\", \"要点2\"]\n  }\n]\n\n")
	b.WriteString("ルール:\n")
	b.WriteString("1. 最初のスライドはタイトル・概要にする\n")
	b.WriteString("2. 各スライドの要点は3〜5個にまとめる\n")
	b.WriteString("3. JSON配列のみを出力し、説明文は含めない\n")
	return b.String()
}
