package render

const cardTemplate = `{{define "card"}}<div class="bg-green-50 rounded-lg p-6 mb-4 hover:shadow-lg transition cursor-pointer notice-card" data-position="{{.Position}}" data-full-description="{{.Description}}" data-title="{{.Title}}" data-date="{{.Date}}">
  <div class="flex justify-between items-start flex-col sm:flex-row">
    <div class="flex-1">
      <h3 class="text-lg font-semibold text-green-800">{{.TitleHTML}}</h3>
      <p class="text-gray-600 mt-1 notice-short-description">{{.Summary}}</p>
    </div>
    <span class="text-sm text-gray-500 mt-2 sm:mt-0 sm:ml-4 notice-date">{{.Date}}</span>
  </div>
</div>
{{end}}`

const summariesTemplate = `{{define "summaries"}}{{range .}}{{template "card" .}}{{end}}{{end}}`

const detailTemplate = `{{define "detail"}}<div class="fixed inset-0 bg-black bg-opacity-50 flex items-center justify-center z-50 p-4 notice-popup">
  <div class="bg-white rounded-lg p-6 max-w-2xl w-full max-h-[90vh] overflow-y-auto">
    <div class="flex justify-between items-start mb-4">
      <h3 class="text-xl font-bold text-green-800">{{.TitleHTML}}</h3>
      <button class="close-popup text-gray-500 hover:text-gray-700 text-2xl">&times;</button>
    </div>
    <p class="text-gray-600 mb-2 notice-date">{{.Date}}</p>
    <div class="text-gray-700 notice-description">{{.Body}}</div>
  </div>
</div>
{{end}}`

const archiveTemplate = `{{define "archive"}}<div class="fixed inset-0 bg-black bg-opacity-70 flex items-center justify-center z-50 p-4 overflow-y-auto notice-archive">
  <div class="bg-white rounded-lg p-6 max-w-4xl w-full max-h-[90vh] overflow-y-auto relative">
    <div class="flex justify-between items-center mb-6 sticky top-0 bg-white py-4 border-b">
      <h3 class="text-2xl font-bold text-green-800">সকল নোটিশ</h3>
      <button class="close-popup text-gray-500 hover:text-gray-700 text-2xl">&times;</button>
    </div>
    <div id="all-notices-container">
{{- range .}}
      <div class="bg-green-50 rounded-lg p-6 mb-4 hover:shadow-md transition archive-item">
        <div class="flex justify-between items-start flex-col sm:flex-row">
          <div class="flex-1">
            <h3 class="text-lg font-semibold text-green-800">{{.TitleHTML}}</h3>
            <div class="text-gray-700 mt-2 notice-description">{{.Body}}</div>
          </div>
          <span class="text-sm text-gray-500 mt-2 sm:mt-0 sm:ml-4 whitespace-nowrap notice-date">{{.Date}}</span>
        </div>
      </div>
{{- end}}
    </div>
  </div>
</div>
{{end}}`

const messageTemplate = `{{define "message"}}<p class="text-center {{.Class}} notice-message">{{.Text}}</p>
{{end}}`
